// Package scanner runs the batch forecast scan: one lookup per configured
// spot, concurrently, with the grid cache deduplicating provider calls for
// spots that share a forecast cell.
package scanner

import (
	"context"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/fakhrymubarak/sunset-scan-api/internal/config"
	"github.com/fakhrymubarak/sunset-scan-api/internal/model"
	"github.com/fakhrymubarak/sunset-scan-api/internal/repository"
)

type Scanner struct {
	repo    repository.ForecastRepository
	spots   []model.Spot
	workers int
}

// New creates a scanner over the given spot list; an empty list falls back
// to the default Bay Area spots.
func New(repo repository.ForecastRepository, spots []model.Spot) *Scanner {
	if len(spots) == 0 {
		spots = model.DefaultSpots
	}
	return &Scanner{
		repo:    repo,
		spots:   spots,
		workers: config.GetScanWorkers(),
	}
}

// Scan looks up every spot and ranks the results by best upcoming event
// quality, descending. A spot whose fetch fails or that has no model data
// is skipped, not fatal. Two spots in the same cell may both fetch live if
// their misses overlap; that redundancy is accepted, the cache keeps
// whichever insert lands last.
func (s *Scanner) Scan(ctx context.Context) (*model.ScanReport, error) {
	s.repo.ResetCacheStats()

	results := make([]*model.ScanResult, len(s.spots))
	var apiCalls atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, spot := range s.spots {
		i, spot := i, spot
		g.Go(func() error {
			forecast, err := s.repo.GetForecast(gctx, spot.Latitude, spot.Longitude)
			if err != nil {
				config.GetLogger().Warnw("spot skipped", "spot", spot.Name, "error", err)
				return nil
			}
			if !forecast.Cached {
				apiCalls.Add(1)
			}
			best := forecast.BestEvent()
			if best == nil {
				return nil
			}
			res := &model.ScanResult{
				Spot:        spot,
				Best:        *best,
				BestQuality: *best.Quality,
				Cached:      forecast.Cached,
			}
			if best.Direction != nil {
				res.Compass = model.DegreesToCompass(*best.Direction)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &model.ScanReport{
		SpotsTotal: len(s.spots),
		APICalls:   int(apiCalls.Load()),
	}
	for _, r := range results {
		if r != nil {
			report.Results = append(report.Results, *r)
		}
	}
	sort.SliceStable(report.Results, func(i, j int) bool {
		return report.Results[i].BestQuality > report.Results[j].BestQuality
	})

	sum := s.repo.CacheStats()
	report.CacheHits = int(sum.Hits)
	report.CacheMisses = int(sum.Misses)
	return report, nil
}
