package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"contesthub/internal/structures"

	"github.com/spf13/viper"
)

func setConfigDefaults() {
	viper.SetDefault("youtube.baseUrl", "https://www.googleapis.com/youtube/v3")
	viper.SetDefault("youtube.timeout", 10*time.Second)
	viper.SetDefault("platforms.codeforces.enabled", true)
	viper.SetDefault("platforms.codeforces.baseUrl", "https://codeforces.com")
	viper.SetDefault("platforms.codeforces.pastLimit", 20)
	viper.SetDefault("platforms.codeforces.rps", 0.5)
	viper.SetDefault("platforms.codechef.enabled", true)
	viper.SetDefault("platforms.codechef.baseUrl", "https://www.codechef.com")
	viper.SetDefault("platforms.codechef.pastLimit", 20)
	viper.SetDefault("platforms.codechef.rps", 2)
	viper.SetDefault("platforms.leetcode.enabled", true)
	viper.SetDefault("platforms.leetcode.baseUrl", "https://leetcode.com")
	viper.SetDefault("platforms.leetcode.pastLimit", 20)
	viper.SetDefault("platforms.leetcode.rps", 2)
	viper.SetDefault("platforms.timeout", 15*time.Second)
	viper.SetDefault("aggregation.policy", structures.PolicyAbort)
	viper.SetDefault("aggregation.timeout", 30*time.Second)
	viper.SetDefault("store.driver", "file")
	viper.SetDefault("store.prefix", "contesthub")
	viper.SetDefault("cache.ttl", 5*time.Minute)
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")
	setConfigDefaults()

	viper.BindEnv("logger.level", "CONTESTHUB_LOG_LEVEL")
	viper.BindEnv("youtube.apiKey", "CONTESTHUB_YOUTUBE_API_KEY")
	viper.BindEnv("youtube.playlistUrl", "CONTESTHUB_YOUTUBE_PLAYLIST_URL")
	viper.BindEnv("aggregation.policy", "CONTESTHUB_AGGREGATION_POLICY")
	viper.BindEnv("store.driver", "CONTESTHUB_STORE_DRIVER")
	viper.BindEnv("store.path", "CONTESTHUB_STORE_PATH")
	viper.BindEnv("store.dsn", "CONTESTHUB_STORE_DSN")
	viper.BindEnv("store.redisUrl", "CONTESTHUB_REDIS_URL")
	viper.BindEnv("cache.enabled", "CONTESTHUB_CACHE_ENABLED")
	viper.BindEnv("cache.size", "CONTESTHUB_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "ContestHub"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
