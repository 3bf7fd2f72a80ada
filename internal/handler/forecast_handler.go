package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fakhrymubarak/sunset-scan-api/internal/cache"
	"github.com/fakhrymubarak/sunset-scan-api/internal/config"
	"github.com/fakhrymubarak/sunset-scan-api/internal/model"
	"github.com/fakhrymubarak/sunset-scan-api/internal/repository"
	"github.com/fakhrymubarak/sunset-scan-api/internal/service"
)

type ForecastHandler struct {
	ForecastService service.ForecastServiceInterface
}

func NewForecastHandler(svc service.ForecastServiceInterface) *ForecastHandler {
	return &ForecastHandler{ForecastService: svc}
}

func (h *ForecastHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		config.GetLogger().Errorw("could not encode json", "error", err)
	}
}

func (h *ForecastHandler) writeError(w http.ResponseWriter, statusCode int, msg string) {
	h.writeJSONResponse(w, statusCode, model.Response{
		Error:   &msg,
		Message: "Error",
	})
}

// HandleForecast serves GET /forecast?latitude=..&longitude=..
func (h *ForecastHandler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	latStr := r.URL.Query().Get("latitude")
	lngStr := r.URL.Query().Get("longitude")
	if latStr == "" || lngStr == "" {
		h.writeError(w, http.StatusBadRequest, "Missing 'latitude' or 'longitude' query parameter")
		return
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid 'latitude' query parameter")
		return
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid 'longitude' query parameter")
		return
	}

	forecast, err := h.ForecastService.GetForecast(r.Context(), lat, lng)
	if err != nil {
		switch {
		case errors.Is(err, cache.ErrCoordinateOutOfRange):
			h.writeError(w, http.StatusBadRequest, "Coordinate out of range")
		case errors.Is(err, repository.ErrLocationNotFound):
			h.writeError(w, http.StatusNotFound, "Location not resolved by forecast provider")
		default:
			h.writeError(w, http.StatusInternalServerError, "Failed to fetch forecast data")
		}
		return
	}

	h.writeJSONResponse(w, http.StatusOK, model.Response{
		Data:    forecast,
		Message: "Success",
	})
}

// HandleScan serves GET /scan: the full spot list, ranked.
func (h *ForecastHandler) HandleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	report, err := h.ForecastService.ScanSpots(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to scan spots")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, model.Response{
		Data:    report,
		Message: "Success",
	})
}
