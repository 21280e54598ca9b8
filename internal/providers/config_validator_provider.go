package providers

import (
	"fmt"

	"contesthub/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks struct tags first, then the cross-field rules tags cannot express.
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.Error())
	}

	switch cv.conf.Store.Driver {
	case "file", "sqlite":
		if cv.conf.Store.Path == "" {
			return fmt.Errorf("invalid config: store.path is required for driver %q", cv.conf.Store.Driver)
		}
	case "redis":
		if cv.conf.Store.RedisURL == "" {
			return fmt.Errorf("invalid config: store.redisUrl is required for driver redis")
		}
	case "postgres":
		if cv.conf.Store.DSN == "" {
			return fmt.Errorf("invalid config: store.dsn is required for driver postgres")
		}
	}

	if cv.conf.Cache.Enabled && cv.conf.Cache.TTL < 0 {
		return fmt.Errorf("invalid config: cache.ttl must not be negative")
	}
	return nil
}
