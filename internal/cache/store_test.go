package cache

import (
	"testing"
	"time"

	"github.com/fakhrymubarak/sunset-scan-api/internal/model"
)

func testForecast(gridLat, gridLng float64) *model.Forecast {
	return &model.Forecast{
		GridLocation: &model.GeoPoint{Latitude: &gridLat, Longitude: &gridLng},
	}
}

func TestStore_LookupMissingKey(t *testing.T) {
	s := NewStore()
	_, ok := s.Lookup(GridCellKey{Lat: 37.0, Lng: -122.5}, time.Now(), time.Hour)
	if ok {
		t.Error("Expected miss on empty store")
	}
}

func TestStore_InsertThenLookup(t *testing.T) {
	s := NewStore()
	key := GridCellKey{Lat: 37.0, Lng: -122.5}
	now := time.Now()
	f := testForecast(37.0, -122.5)

	s.Insert(key, f, now)

	got, ok := s.Lookup(key, now.Add(time.Minute), time.Hour)
	if !ok {
		t.Fatal("Expected hit after insert")
	}
	if got != f {
		t.Error("Expected the inserted payload back")
	}
}

func TestStore_ExpiryBoundary(t *testing.T) {
	s := NewStore()
	key := GridCellKey{Lat: 37.0, Lng: -122.5}
	storedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ttl := 3 * time.Hour
	s.Insert(key, testForecast(37.0, -122.5), storedAt)

	if _, ok := s.Lookup(key, storedAt.Add(ttl-time.Second), ttl); !ok {
		t.Error("Expected hit one second before TTL")
	}
	if _, ok := s.Lookup(key, storedAt.Add(ttl), ttl); ok {
		t.Error("Expected miss at exactly TTL")
	}
	if _, ok := s.Lookup(key, storedAt.Add(ttl+time.Hour), ttl); ok {
		t.Error("Expected miss after TTL")
	}
}

func TestStore_ExpiredLookupDoesNotEvict(t *testing.T) {
	s := NewStore()
	key := GridCellKey{Lat: 37.0, Lng: -122.5}
	storedAt := time.Now()
	s.Insert(key, testForecast(37.0, -122.5), storedAt)

	// Expired read: entry is logically gone but physically kept.
	if _, ok := s.Lookup(key, storedAt.Add(time.Hour), time.Minute); ok {
		t.Fatal("Expected miss on expired entry")
	}
	if s.Len() != 1 {
		t.Errorf("Expected expired entry to stay in the map, len=%d", s.Len())
	}
}

func TestStore_InsertOverwrites(t *testing.T) {
	s := NewStore()
	key := GridCellKey{Lat: 37.0, Lng: -122.5}
	now := time.Now()
	first := testForecast(37.0, -122.5)
	second := testForecast(37.0, -122.5)

	s.Insert(key, first, now)
	s.Insert(key, second, now.Add(time.Minute))

	got, ok := s.Lookup(key, now.Add(2*time.Minute), time.Hour)
	if !ok {
		t.Fatal("Expected hit")
	}
	if got != second {
		t.Error("Expected the second payload to win")
	}
	if s.Len() != 1 {
		t.Errorf("Expected a single entry per cell, len=%d", s.Len())
	}
}

func TestStore_CellsAreIndependent(t *testing.T) {
	s := NewStore()
	now := time.Now()
	keyA := GridCellKey{Lat: 37.0, Lng: -122.5}
	keyB := GridCellKey{Lat: 37.5, Lng: -122.5}

	s.Insert(keyA, testForecast(37.0, -122.5), now)

	if _, ok := s.Lookup(keyB, now, time.Hour); ok {
		t.Error("Expected insert for cell A to leave cell B absent")
	}
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	now := time.Now()
	s.Insert(GridCellKey{Lat: 37.0, Lng: -122.5}, testForecast(37.0, -122.5), now)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected empty store after Clear, len=%d", s.Len())
	}
}
