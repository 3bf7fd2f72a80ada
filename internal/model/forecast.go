package model

import "time"

// GeoPoint is a latitude/longitude pair as returned by the SunsetHue API.
// Fields are pointers because the API returns null coordinates for
// locations it could not resolve.
type GeoPoint struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Magics holds the optional named time windows around an event. Each window
// is a [start, end] pair of UTC timestamps.
type Magics struct {
	GoldenHour []time.Time `json:"golden_hour,omitempty"`
	BlueHour   []time.Time `json:"blue_hour,omitempty"`
}

// Event is a single sunrise or sunset forecast entry.
type Event struct {
	// Type is "sunrise" or "sunset".
	Type string `json:"type"`
	// ModelData is false when the provider has no forecast model output
	// for this entry; quality fields are meaningless in that case.
	ModelData bool `json:"model_data"`
	// Quality is the forecast quality score in [0, 1].
	Quality *float64 `json:"quality,omitempty"`
	// QualityText is the provider's category label (Poor .. Excellent).
	QualityText string `json:"quality_text,omitempty"`
	// CloudCover is the cloud cover fraction in [0, 1].
	CloudCover *float64 `json:"cloud_cover,omitempty"`
	// Time is the event time in UTC.
	Time time.Time `json:"time"`
	// Direction is the compass bearing of the event in degrees.
	Direction *float64 `json:"direction,omitempty"`
	Magics    Magics   `json:"magics,omitempty"`
}

// Forecast is a SunsetHue forecast response.
//
// GridLocation identifies the 0.5-degree model grid cell the forecast
// belongs to. Every coordinate inside that cell receives identical data, so
// it is the authoritative cache key for the response (the query coordinate
// near a cell boundary may quantize to a neighboring cell).
type Forecast struct {
	Location     *GeoPoint `json:"location,omitempty"`
	GridLocation *GeoPoint `json:"grid_location,omitempty"`
	Data         []Event   `json:"data"`
	Cached       bool      `json:"cached"`
}

// BestEvent returns the highest-quality event that has model data, or nil
// if every entry lacks model output.
func (f *Forecast) BestEvent() *Event {
	var best *Event
	bestQ := -1.0
	for i := range f.Data {
		e := &f.Data[i]
		if !e.ModelData || e.Quality == nil {
			continue
		}
		if *e.Quality > bestQ {
			bestQ = *e.Quality
			best = e
		}
	}
	return best
}
