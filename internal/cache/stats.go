package cache

import "sync/atomic"

// Stats counts cache hits and misses across a batch of lookups, used to
// report how many provider calls a scan saved.
type Stats struct {
	hits   atomic.Int64
	misses atomic.Int64
}

// Summary is a point-in-time snapshot of the counters.
type Summary struct {
	Hits       int64 `json:"hits"`
	Misses     int64 `json:"misses"`
	TotalCalls int64 `json:"total_calls"`
}

func (s *Stats) RecordHit()  { s.hits.Add(1) }
func (s *Stats) RecordMiss() { s.misses.Add(1) }

func (s *Stats) Summary() Summary {
	h := s.hits.Load()
	m := s.misses.Load()
	return Summary{Hits: h, Misses: m, TotalCalls: h + m}
}

func (s *Stats) Reset() {
	s.hits.Store(0)
	s.misses.Store(0)
}
