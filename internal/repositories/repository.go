package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/vesoapp/veso-backend/internal/models"
)

// ErrNotFound is returned by cache repositories on a miss.
var ErrNotFound = errors.New("not found")

// ResultCacheRepository defines the durable result cache. Published drawing
// results never change, so entries carry a long TTL (days). The fetch
// pipeline treats every error from this store as a plain miss.
type ResultCacheRepository interface {
	Get(ctx context.Context, key string) (models.ResultSet, error)
	Put(ctx context.Context, key string, set models.ResultSet, ttl time.Duration) error
}
