package config

import (
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func initConfig() {
	once.Do(func() {
		root, err := getProjectRoot()
		if err != nil {
			GetLogger().Errorw("Error finding project root", "error", err)
		}
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			viper.AddConfigPath(root)
		}

		err = viper.MergeInConfig()
		if err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func GetSunsetHueAPIURL() string {
	initConfig()
	return viper.GetString("sunsethue.api_url")
}

func GetSunsetHueAPIKey() string {
	_ = godotenv.Load()
	return os.Getenv("SUNSETHUE_API_KEY")
}

func GetServerPort() string {
	initConfig()
	return viper.GetString("server.port")
}

func GetServerTimeout(key string) string {
	initConfig()
	return viper.GetString("server." + key)
}

// GetCacheCellSize returns the forecast grid cell size in degrees.
// Defaults to 0.5, the SunsetHue model grid resolution.
func GetCacheCellSize() float64 {
	initConfig()
	size := viper.GetFloat64("cache.cell_size_degrees")
	if size <= 0 {
		size = 0.5
	}
	return size
}

// GetCacheTTL returns the forecast cache TTL as a time.Duration.
// Defaults to 3h (forecasts update ~every 6h, so 3h is a safe middle ground).
func GetCacheTTL() time.Duration {
	initConfig()
	durStr := viper.GetString("cache.ttl")
	if durStr == "" {
		durStr = "3h"
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		return 3 * time.Hour
	}
	return dur
}

// GetScanWorkers returns the number of concurrent workers for a spot scan.
func GetScanWorkers() int {
	initConfig()
	workers := viper.GetInt("scan.workers")
	if workers <= 0 {
		workers = 4
	}
	return workers
}

// GetProviderRateLimit returns the rate and burst for pacing live SunsetHue
// calls. Cache hits are never paced.
func GetProviderRateLimit() (rate float64, burst int) {
	initConfig()
	rate = viper.GetFloat64("scan.provider_rate")
	if rate == 0 {
		rate = 6
	}
	burst = viper.GetInt("scan.provider_burst")
	if burst == 0 {
		burst = 1
	}
	return
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}

// GetRateLimiterCleanupTimeout returns the rate limiter cleanup timeout as a time.Duration.
// Defaults to 3m if not set or invalid.
func GetRateLimiterCleanupTimeout() time.Duration {
	initConfig()
	durStr := viper.GetString("rate_limiter.cleanup_timeout")
	if durStr == "" {
		durStr = "3m"
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		return 3 * time.Minute
	}
	return dur
}

// GetGlobalRateLimiterConfig returns the rate and burst for the global rate limiter from config.
func GetGlobalRateLimiterConfig() (rate float64, burst int) {
	initConfig()
	rate = viper.GetFloat64("rate_limiter.global.rate")
	if rate == 0 {
		rate = 10
	}
	burst = viper.GetInt("rate_limiter.global.burst")
	if burst == 0 {
		burst = 10
	}
	return
}

// GetParamRateLimiterConfig returns the rate and burst for the per-coordinate rate limiter from config.
func GetParamRateLimiterConfig() (rate float64, burst int) {
	initConfig()
	rate = viper.GetFloat64("rate_limiter.param.rate")
	if rate == 0 {
		rate = 2
	}
	burst = viper.GetInt("rate_limiter.param.burst")
	if burst == 0 {
		burst = 2
	}
	return
}
