package cache

import (
	"sync"
	"time"

	"github.com/fakhrymubarak/sunset-scan-api/internal/model"
)

type entry struct {
	payload  *model.Forecast
	storedAt time.Time
}

// Store is the key-to-entry mapping behind ForecastCache. A single mutex
// guards the whole map; cell counts stay in the dozens, so per-key locking
// would buy nothing.
type Store struct {
	mu sync.Mutex
	m  map[GridCellKey]entry
}

func NewStore() *Store {
	return &Store{m: make(map[GridCellKey]entry)}
}

// Lookup returns the payload stored under key if it is still live at now.
// Expiry is lazy: an entry older than ttl is reported absent but stays in
// the map until the next Insert overwrites it.
func (s *Store) Lookup(key GridCellKey, now time.Time, ttl time.Duration) (*model.Forecast, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[key]
	if !ok || now.Sub(e.storedAt) >= ttl {
		return nil, false
	}
	return e.payload, true
}

// Insert stores payload under key, unconditionally replacing any previous
// entry for the same cell.
func (s *Store) Insert(key GridCellKey, payload *model.Forecast, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = entry{payload: payload, storedAt: now}
}

// Len reports the number of physical entries, live or expired.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = make(map[GridCellKey]entry)
}
