package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/fakhrymubarak/sunset-scan-api/internal/cache"
	"github.com/fakhrymubarak/sunset-scan-api/internal/config"
	"github.com/fakhrymubarak/sunset-scan-api/internal/model"
)

// the visitor holds the rate limiter and last seen time for a specific IP address.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// cellVisitor holds the rate limiter and last seen time for a specific IP and grid cell.
type cellVisitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	// globalVisitors maps IP addresses to their corresponding visitor struct for global rate limiting.
	globalVisitors = make(map[string]*visitor) // key: ip
	// cellVisitors maps IP addresses and grid cells to their corresponding cellVisitor struct.
	// Limiting per cell instead of per raw coordinate keeps a client from
	// burning provider credit by sweeping points inside one forecast cell.
	cellVisitors = make(map[string]map[string]*cellVisitor) // key: ip -> cell -> visitor
	muGlobal     sync.Mutex
	muCell       sync.Mutex

	limitsOnce  sync.Once
	globalRate  float64
	globalBurst int
	cellRate    float64
	cellBurst   int
)

func loadLimits() {
	limitsOnce.Do(func() {
		globalRate, globalBurst = config.GetGlobalRateLimiterConfig()
		cellRate, cellBurst = config.GetParamRateLimiterConfig()
	})
}

// SetLimitsForTest overrides the configured rates and bursts. Use only in tests.
func SetLimitsForTest(gRate float64, gBurst int, cRate float64, cBurst int) {
	limitsOnce.Do(func() {})
	globalRate, globalBurst = gRate, gBurst
	cellRate, cellBurst = cRate, cBurst
}

// getGlobalLimiter returns the rate limiter for the given IP address, creating one if it does not exist.
func getGlobalLimiter(ip string) *rate.Limiter {
	loadLimits()
	muGlobal.Lock()
	defer muGlobal.Unlock()
	v, exists := globalVisitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(globalRate/60.0), globalBurst)
		globalVisitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// getCellLimiter returns the rate limiter for the given IP address and grid cell, creating one if it does not exist.
func getCellLimiter(ip, cell string) *rate.Limiter {
	loadLimits()
	muCell.Lock()
	defer muCell.Unlock()
	if _, ok := cellVisitors[ip]; !ok {
		cellVisitors[ip] = make(map[string]*cellVisitor)
	}
	v, exists := cellVisitors[ip][cell]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(cellRate/60.0), cellBurst)
		cellVisitors[ip][cell] = &cellVisitor{limiter, time.Now()}
		return limiter
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupGlobalVisitors periodically removes globalVisitors entries that have not been seen recently.
func cleanupGlobalVisitors() {
	timeout := config.GetRateLimiterCleanupTimeout()
	for {
		time.Sleep(time.Minute)
		muGlobal.Lock()
		for ip, v := range globalVisitors {
			if time.Since(v.lastSeen) > timeout {
				delete(globalVisitors, ip)
			}
		}
		muGlobal.Unlock()
	}
}

// cleanupCellVisitors periodically removes cellVisitors entries that have not been seen recently.
func cleanupCellVisitors() {
	timeout := config.GetRateLimiterCleanupTimeout()
	for {
		time.Sleep(time.Minute)
		muCell.Lock()
		for ip, cellMap := range cellVisitors {
			for cell, v := range cellMap {
				if time.Since(v.lastSeen) > timeout {
					delete(cellMap, cell)
				}
			}
			if len(cellMap) == 0 {
				delete(cellVisitors, ip)
			}
		}
		muCell.Unlock()
	}
}

// StartRateLimiterCleanup starts background goroutines to clean up stale visitors for both limiters.
func StartRateLimiterCleanup() {
	go cleanupGlobalVisitors()
	go cleanupCellVisitors()
}

// ResetVisitors clears all visitor states for both limiters. Used primarily for testing.
func ResetVisitors() {
	muGlobal.Lock()
	for k := range globalVisitors {
		delete(globalVisitors, k)
	}
	muGlobal.Unlock()
	muCell.Lock()
	for k := range cellVisitors {
		delete(cellVisitors, k)
	}
	muCell.Unlock()
}

// getIP extracts the client's IP address from the HTTP request, considering X-Forwarded-For headers.
func getIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr // fallback
	}
	return ip
}

// getCell buckets the request's coordinates onto the forecast grid. Requests
// without parseable coordinates share a single bucket.
func getCell(r *http.Request) string {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("latitude"), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("longitude"), 64)
	if latErr != nil || lngErr != nil {
		return "__none__"
	}
	key, err := cache.CellKeyFor(cache.Coordinate{Latitude: lat, Longitude: lng}, config.GetCacheCellSize())
	if err != nil {
		return "__none__"
	}
	return key.String()
}

// RateLimitMiddleware returns an HTTP middleware that enforces global and per-grid-cell rate limiting.
// If the rate limit is exceeded, it responds with a 429 status and a JSON error message.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := getIP(r)
		cellKey := getCell(r)
		globalLimiter := getGlobalLimiter(ip)
		cellLimiter := getCellLimiter(ip, cellKey)
		if !globalLimiter.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			errMsg := "Rate limit exceeded: too many requests per minute per user/IP"
			resp := model.Response{
				Error:   &errMsg,
				Message: "Too Many Requests (global limit)",
			}
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		if !cellLimiter.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			errMsg := "Rate limit exceeded: too many requests per minute per grid cell per user/IP"
			resp := model.Response{
				Error:   &errMsg,
				Message: "Too Many Requests (per-cell limit)",
			}
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		next.ServeHTTP(w, r)
	})
}
