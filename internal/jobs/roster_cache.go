package jobs

import (
	"context"
	"sync"

	"driverroutes/internal/core/domain/model/route"
	"driverroutes/internal/core/ports"
)

// RosterCache holds the last successfully fetched driver roster. A warm cache
// answers locally; a cold one falls through to the route backend and keeps
// the result. Refreshing and reading may happen concurrently.
type RosterCache struct {
	backend ports.RouteBackend

	mu      sync.RWMutex
	drivers []route.Driver
	filled  bool
}

// NewRosterCache creates an empty roster cache over the route backend.
func NewRosterCache(backend ports.RouteBackend) *RosterCache {
	return &RosterCache{backend: backend}
}

// GetDrivers returns the cached roster, fetching from the backend when the
// cache has never been filled.
func (c *RosterCache) GetDrivers(ctx context.Context) ([]route.Driver, error) {
	c.mu.RLock()
	if c.filled {
		drivers := make([]route.Driver, len(c.drivers))
		copy(drivers, c.drivers)
		c.mu.RUnlock()
		return drivers, nil
	}
	c.mu.RUnlock()

	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	drivers := make([]route.Driver, len(c.drivers))
	copy(drivers, c.drivers)
	return drivers, nil
}

// Refresh fetches the roster from the backend and replaces the cached copy.
// On failure the previous roster is kept.
func (c *RosterCache) Refresh(ctx context.Context) error {
	drivers, err := c.backend.GetDrivers(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.drivers = drivers
	c.filled = true
	c.mu.Unlock()
	return nil
}
