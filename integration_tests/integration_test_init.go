package integrationtest

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/fakhrymubarak/sunset-scan-api/internal/cache"
	"github.com/fakhrymubarak/sunset-scan-api/internal/handler"
	"github.com/fakhrymubarak/sunset-scan-api/internal/repository"
	"github.com/fakhrymubarak/sunset-scan-api/internal/service"
)

// providerCalls counts live forecast requests reaching the mock provider.
var providerCalls atomic.Int64

// mockSunsetHueAPI imitates the SunsetHue forecast endpoint: it requires the
// x-api-key header and the full latitude/longitude parameter names, and it
// answers any request inside one 0.5-degree grid cell with the same
// forecast, keyed by that cell.
func mockSunsetHueAPI() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Header.Get("x-api-key") != "test_api_key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"invalid api key"}`))
			return
		}

		latStr := r.URL.Query().Get("latitude")
		lngStr := r.URL.Query().Get("longitude")
		if latStr == "" || lngStr == "" {
			// The real provider does not error on abbreviated parameter
			// names; it silently returns a valid shape with null data.
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"location":{"latitude":null,"longitude":null},"data":[]}`))
			return
		}

		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil || (lat == 0 && lng == 0) {
			// (0, 0) stands in for a location the provider cannot resolve.
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"location not found"}`))
			return
		}

		providerCalls.Add(1)

		gridLat := math.Floor(lat/0.5) * 0.5
		gridLng := math.Floor(lng/0.5) * 0.5
		// Quality derived from the cell so assertions can tell cells apart.
		quality := 0.5 + 0.4*math.Abs(math.Sin(gridLat+gridLng))

		resp := map[string]interface{}{
			"location":      map[string]interface{}{"latitude": lat, "longitude": lng},
			"grid_location": map[string]interface{}{"latitude": gridLat, "longitude": gridLng},
			"data": []map[string]interface{}{
				{
					"type":         "sunrise",
					"model_data":   true,
					"quality":      quality * 0.9,
					"quality_text": "Good",
					"cloud_cover":  0.35,
					"time":         time.Date(2026, 3, 1, 14, 28, 0, 0, time.UTC).Format(time.RFC3339),
					"direction":    101.0,
				},
				{
					"type":         "sunset",
					"model_data":   true,
					"quality":      quality,
					"quality_text": "Great",
					"cloud_cover":  0.2,
					"time":         time.Date(2026, 3, 2, 2, 10, 0, 0, time.UTC).Format(time.RFC3339),
					"direction":    259.0,
					"magics": map[string]interface{}{
						"golden_hour": []string{
							time.Date(2026, 3, 2, 1, 40, 0, 0, time.UTC).Format(time.RFC3339),
							time.Date(2026, 3, 2, 2, 10, 0, 0, time.UTC).Format(time.RFC3339),
						},
					},
				},
			},
		}
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			panic(fmt.Sprintf("mock provider encode: %v", err))
		}
	}))
}

// setupIntegrationTestServer wires the full stack (cache, repository,
// service, handler) exactly as main does, minus the middleware, and serves
// it from an httptest server.
func setupIntegrationTestServer() *httptest.Server {
	forecastCache := cache.New(0.5, 3*time.Hour)
	forecastRepo := repository.NewForecastRepository(forecastCache)
	forecastService := service.NewForecastService(forecastRepo)
	forecastHandler := handler.NewForecastHandler(forecastService)

	mux := http.NewServeMux()
	mux.HandleFunc("/forecast", forecastHandler.HandleForecast)
	mux.HandleFunc("/scan", forecastHandler.HandleScan)

	return httptest.NewServer(mux)
}
