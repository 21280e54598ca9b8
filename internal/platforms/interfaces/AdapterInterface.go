package interfaces

import (
	"context"

	"contesthub/internal/models"
)

// AdapterInterface produces normalized contest records for one platform.
// Returned contests carry no status; it is derived at aggregation time.
type AdapterInterface interface {
	Platform() models.Platform
	Fetch(ctx context.Context) ([]models.Contest, error)
}
