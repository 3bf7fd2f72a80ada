// Package cache implements the grid-bucketed forecast cache.
//
// The SunsetHue API returns the same forecast for every coordinate inside
// the same 0.5-degree grid cell (the "grid_location" field in the
// response), and forecasts update only ~4 times per day. Caching one
// response per grid cell therefore collapses a scan of many nearby spots
// into a handful of live API calls.
package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/fakhrymubarak/sunset-scan-api/internal/model"
)

const (
	// DefaultCellSize mirrors the SunsetHue model grid resolution.
	DefaultCellSize = 0.5
	// DefaultTTL is 3h: forecasts update ~every 6h, so 3h is a safe
	// middle ground.
	DefaultTTL = 3 * time.Hour
)

// ErrNoGridLocation is returned by Put when a payload carries no usable
// grid cell descriptor. The insert is rejected rather than stored under a
// guessed key, since a wrong key would cause incorrect future hits.
var ErrNoGridLocation = errors.New("forecast has no usable grid location")

// ForecastCache deduplicates forecast lookups by grid cell. It never
// performs network I/O itself: Get reports a miss and the caller fetches,
// then hands the payload back through Put.
//
// Get keys by quantizing the query coordinate; Put re-derives the storage
// key from the payload's own grid_location, because the provider is the
// authority on grid boundaries. A query near a cell edge can quantize to a
// neighboring cell locally, and trusting the reported cell keeps both
// variants resolving to one entry.
type ForecastCache struct {
	cellSize float64
	ttl      time.Duration
	store    *Store
	stats    Stats

	// now is swappable so expiry tests don't sleep.
	now func() time.Time
}

// New constructs a cache with the given cell size in degrees and entry TTL.
// Non-positive values fall back to the defaults.
func New(cellSize float64, ttl time.Duration) *ForecastCache {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ForecastCache{
		cellSize: cellSize,
		ttl:      ttl,
		store:    NewStore(),
		now:      time.Now,
	}
}

// Get returns the live cached forecast covering coord, if any. A miss is a
// normal outcome, not an error; the only error is a coordinate outside the
// valid latitude/longitude range.
func (c *ForecastCache) Get(coord Coordinate) (*model.Forecast, bool, error) {
	key, err := CellKeyFor(coord, c.cellSize)
	if err != nil {
		return nil, false, err
	}
	payload, ok := c.store.Lookup(key, c.now(), c.ttl)
	if !ok {
		c.stats.RecordMiss()
		return nil, false, nil
	}
	c.stats.RecordHit()
	return payload, true, nil
}

// Put stores a fetched forecast, keyed by the grid cell the provider
// reported. Concurrent Puts for the same cell are last-write-wins; payload
// validity (e.g. entries flagged as having no model data) is the caller's
// concern, not the cache's.
func (c *ForecastCache) Put(payload *model.Forecast) error {
	if payload == nil || payload.GridLocation == nil ||
		payload.GridLocation.Latitude == nil || payload.GridLocation.Longitude == nil {
		return ErrNoGridLocation
	}
	key, err := CellKeyFor(Coordinate{
		Latitude:  *payload.GridLocation.Latitude,
		Longitude: *payload.GridLocation.Longitude,
	}, c.cellSize)
	if err != nil {
		return fmt.Errorf("reported grid location: %w", err)
	}
	c.store.Insert(key, payload, c.now())
	return nil
}

// StatsSummary snapshots the hit/miss counters.
func (c *ForecastCache) StatsSummary() Summary {
	return c.stats.Summary()
}

// ResetStats zeroes the counters, typically at the start of a scan.
func (c *ForecastCache) ResetStats() {
	c.stats.Reset()
}

// Clear drops all entries and counters.
func (c *ForecastCache) Clear() {
	c.store.Clear()
	c.stats.Reset()
}
