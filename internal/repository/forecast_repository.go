package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/fakhrymubarak/sunset-scan-api/internal/cache"
	"github.com/fakhrymubarak/sunset-scan-api/internal/config"
	"github.com/fakhrymubarak/sunset-scan-api/internal/model"
)

const userAgent = "sunset-scan-api/1.0 (sunset-quality-checker)"

// Custom error types
var (
	ErrAPIKeyMissing    = errors.New("API key missing")
	ErrExternalAPI      = errors.New("external API error")
	ErrLocationNotFound = errors.New("location not resolved by provider")
)

// ForecastRepository defines the interface for forecast data access.
type ForecastRepository interface {
	GetForecast(ctx context.Context, lat, lng float64) (*model.Forecast, error)
	CacheStats() cache.Summary
	ResetCacheStats()
}

// forecastRepository implements ForecastRepository: grid cache first, then
// a live SunsetHue call. It is the only component that talks to the network.
type forecastRepository struct {
	cache      *cache.ForecastCache
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewForecastRepository creates a repository backed by the given cache. An
// optional http.Client can be injected for testing.
func NewForecastRepository(forecastCache *cache.ForecastCache, httpClient ...*http.Client) ForecastRepository {
	client := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	r, b := config.GetProviderRateLimit()
	return &forecastRepository{
		cache:      forecastCache,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(r), b),
	}
}

// GetForecast returns the forecast covering the coordinate, from cache when
// a live entry exists for its grid cell, otherwise from the provider.
func (r *forecastRepository) GetForecast(ctx context.Context, lat, lng float64) (*model.Forecast, error) {
	cached, ok, err := r.cache.Get(cache.Coordinate{Latitude: lat, Longitude: lng})
	if err != nil {
		return nil, err
	}
	if ok {
		// Shallow copy so the Cached flag never leaks into the stored entry.
		out := *cached
		out.Cached = true
		return &out, nil
	}

	forecast, err := r.fetchFromProvider(ctx, lat, lng)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Put(forecast); err != nil {
		// Serve the response uncached rather than store it under a
		// guessed key.
		config.GetLogger().Warnw("forecast left uncached",
			"error", err, "latitude", lat, "longitude", lng)
	}

	return forecast, nil
}

// fetchFromProvider performs the live SunsetHue call, paced by the
// provider rate limiter so scans stay polite.
func (r *forecastRepository) fetchFromProvider(ctx context.Context, lat, lng float64) (*model.Forecast, error) {
	apiKey := config.GetSunsetHueAPIKey()
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	// Full parameter names are required. With abbreviated names (lat/lng)
	// the provider returns a structurally valid response whose data fields
	// are all null instead of an error.
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.GetSunsetHueAPIURL()+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, ErrExternalAPI
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrLocationNotFound
		}
		return nil, ErrExternalAPI
	}

	var forecast model.Forecast
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, err
	}

	// Null coordinates mean the provider could not resolve the location.
	if forecast.Location == nil || forecast.Location.Latitude == nil {
		return nil, ErrLocationNotFound
	}

	return &forecast, nil
}

// CacheStats snapshots the cache hit/miss counters.
func (r *forecastRepository) CacheStats() cache.Summary {
	return r.cache.StatsSummary()
}

// ResetCacheStats zeroes the counters before a new scan.
func (r *forecastRepository) ResetCacheStats() {
	r.cache.ResetStats()
}
