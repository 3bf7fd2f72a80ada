package model

import "math"

// Spot is a scannable location, typically a hiking viewpoint.
type Spot struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	DriveMinutes int     `json:"drive_minutes"`
	Description  string  `json:"description"`
}

// ScanResult is one spot's best upcoming event.
type ScanResult struct {
	Spot        Spot    `json:"spot"`
	Best        Event   `json:"best"`
	BestQuality float64 `json:"best_quality"`
	Compass     string  `json:"compass,omitempty"`
	Cached      bool    `json:"cached"`
}

// ScanReport is the outcome of scanning the full spot list, ranked by best
// quality descending. APICalls plus CacheHits normally equals the number of
// spots that returned data; the gap between them is the dedup saving.
type ScanReport struct {
	Results     []ScanResult `json:"results"`
	SpotsTotal  int          `json:"spots_total"`
	APICalls    int          `json:"api_calls"`
	CacheHits   int          `json:"cache_hits"`
	CacheMisses int          `json:"cache_misses"`
}

var compassDirs = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// DegreesToCompass converts a bearing in degrees to a compass abbreviation.
func DegreesToCompass(deg float64) string {
	idx := int(math.Round(deg/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassDirs[idx]
}
