package service

import (
	"context"

	"github.com/fakhrymubarak/sunset-scan-api/internal/model"
	"github.com/fakhrymubarak/sunset-scan-api/internal/repository"
	"github.com/fakhrymubarak/sunset-scan-api/internal/scanner"
)

// ForecastServiceInterface is what handlers program against.
type ForecastServiceInterface interface {
	GetForecast(ctx context.Context, lat, lng float64) (*model.Forecast, error)
	ScanSpots(ctx context.Context) (*model.ScanReport, error)
}

type forecastService struct {
	repo repository.ForecastRepository
	scan *scanner.Scanner
}

// NewForecastService creates the service over a repository; the scanner
// runs against the default spot list.
func NewForecastService(repo repository.ForecastRepository) ForecastServiceInterface {
	return &forecastService{
		repo: repo,
		scan: scanner.New(repo, model.DefaultSpots),
	}
}

// GetForecast returns the forecast for a single coordinate.
func (s *forecastService) GetForecast(ctx context.Context, lat, lng float64) (*model.Forecast, error) {
	forecast, err := s.repo.GetForecast(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	return forecast, nil
}

// ScanSpots runs the batch scan over the configured spot list.
func (s *forecastService) ScanSpots(ctx context.Context) (*model.ScanReport, error) {
	return s.scan.Scan(ctx)
}
