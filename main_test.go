package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fakhrymubarak/sunset-scan-api/internal/config"
)

func TestServerStartup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("could not send GET request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestConfiguredPort(t *testing.T) {
	port := config.GetServerPort()
	if port != "8080" {
		t.Errorf("Expected default port 8080, got %s", port)
	}
}

func TestServerTimeoutFallback(t *testing.T) {
	// Unknown keys fall back to the given default.
	if got := serverTimeout("nonexistent_timeout", 7*time.Second); got != 7*time.Second {
		t.Errorf("Expected fallback 7s, got %v", got)
	}
}

func TestHTTPHandlerRegistration(t *testing.T) {
	mux := http.NewServeMux()

	forecastHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/forecast", forecastHandler)

	req, _ := http.NewRequest("GET", "/forecast", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}
