package config

import (
	"os"
	"testing"
	"time"
)

func TestGetSunsetHueAPIKey(t *testing.T) {
	// Test with the environment variable set
	expectedKey := "test_api_key_123"
	os.Setenv("SUNSETHUE_API_KEY", expectedKey)
	defer os.Unsetenv("SUNSETHUE_API_KEY")

	result := GetSunsetHueAPIKey()
	if result != expectedKey {
		t.Errorf("Expected API key %s, got %s", expectedKey, result)
	}

	// Test with environment variable not set
	os.Unsetenv("SUNSETHUE_API_KEY")
	result = GetSunsetHueAPIKey()
	if result != "" {
		t.Errorf("Expected empty string, got %s", result)
	}
}

func TestGetSunsetHueAPIURL(t *testing.T) {
	want := "https://api.sunsethue.com/forecast"
	got := GetSunsetHueAPIURL()
	if got != want {
		t.Errorf("Expected API URL %s, got %s", want, got)
	}
}

func TestGetServerPort(t *testing.T) {
	want := "8080"
	got := GetServerPort()
	if got != want {
		t.Errorf("Expected server port %s, got %s", want, got)
	}
}

func TestGetCacheCellSize(t *testing.T) {
	want := 0.5
	got := GetCacheCellSize()
	if got != want {
		t.Errorf("Expected cell size %v, got %v", want, got)
	}
}

func TestGetCacheTTL(t *testing.T) {
	want := 3 * time.Hour
	got := GetCacheTTL()
	if got != want {
		t.Errorf("Expected TTL %v, got %v", want, got)
	}
}

func TestGetScanWorkers(t *testing.T) {
	got := GetScanWorkers()
	if got <= 0 {
		t.Errorf("Expected positive worker count, got %d", got)
	}
}

func TestGetProviderRateLimit(t *testing.T) {
	rate, burst := GetProviderRateLimit()
	if rate <= 0 || burst <= 0 {
		t.Errorf("Expected positive provider rate/burst, got %v/%d", rate, burst)
	}
}

func TestGetRateLimiterCleanupTimeout(t *testing.T) {
	got := GetRateLimiterCleanupTimeout()
	if got <= 0 {
		t.Errorf("Expected positive cleanup timeout, got %v", got)
	}
}

func TestGetGlobalRateLimiterConfig(t *testing.T) {
	rate, burst := GetGlobalRateLimiterConfig()
	if rate <= 0 || burst <= 0 {
		t.Errorf("Expected positive global rate/burst, got %v/%d", rate, burst)
	}
}

func TestGetParamRateLimiterConfig(t *testing.T) {
	rate, burst := GetParamRateLimiterConfig()
	if rate <= 0 || burst <= 0 {
		t.Errorf("Expected positive param rate/burst, got %v/%d", rate, burst)
	}
}
