package handler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

// BrandingSource is the backend call the cache wraps.
type BrandingSource interface {
	Branding(ctx context.Context) (model.Branding, error)
}

// BrandingCache keeps the public branding for ttl so page renders do not
// each cost a backend call. Failed refreshes keep serving the last value.
type BrandingCache struct {
	src    BrandingSource
	ttl    time.Duration
	logger *slog.Logger

	mu        sync.Mutex
	value     model.Branding
	fetchedAt time.Time
	now       func() time.Time
}

func NewBrandingCache(src BrandingSource, ttl time.Duration, logger *slog.Logger) *BrandingCache {
	return &BrandingCache{
		src:    src,
		ttl:    ttl,
		logger: logger,
		value:  model.DefaultBranding(),
		now:    time.Now,
	}
}

func (c *BrandingCache) Get(ctx context.Context) model.Branding {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.value
	}
	b, err := c.src.Branding(ctx)
	c.fetchedAt = c.now()
	if err != nil {
		c.logger.Warn("fetch branding", "error", err)
		return c.value
	}
	c.value = b
	return c.value
}
