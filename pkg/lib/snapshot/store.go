package snapshot

import (
	"sync/atomic"

	"github.com/SanjoDeundiak/process-metrics/pkg/lib"
)

// Store is a single-slot holder for the most recent Sample of one request.
// Set and Get may run concurrently; a reader always observes a whole Sample because
// every Set publishes a pointer to a private copy. Last write wins, no history is kept.
type Store struct {
	latest atomic.Pointer[lib.Sample]
	count  atomic.Uint32
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Set replaces the stored sample.
func (s *Store) Set(sample lib.Sample) {
	if s == nil {
		return
	}

	cp := sample
	s.latest.Store(&cp)
	s.count.Add(1)
}

// Get returns the latest sample, or false if none has been stored yet.
func (s *Store) Get() (lib.Sample, bool) {
	if s == nil {
		return lib.Sample{}, false
	}

	p := s.latest.Load()
	if p == nil {
		return lib.Sample{}, false
	}
	return *p, true
}

// Count returns how many samples have been stored.
func (s *Store) Count() uint32 {
	if s == nil {
		return 0
	}
	return s.count.Load()
}
