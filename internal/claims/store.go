// SPDX-License-Identifier: MIT

// Package claims tracks which incident identifiers have been claimed through
// this gateway. The set is process-local: it starts empty, never evicts, and
// is lost on restart. Claims are advisory and never validated against the
// upstream Agent.
package claims

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var claimedIncidents = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "idxgw_claimed_incidents",
	Help: "Number of incident identifiers currently claimed",
})

// Store is a concurrency-safe set of claimed incident identifiers. The zero
// value is not usable; construct with NewStore so each test can own an
// isolated instance.
type Store struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewStore returns an empty claim store.
func NewStore() *Store {
	return &Store{ids: make(map[string]struct{})}
}

// Claim marks id as claimed. It reports whether the id was newly inserted;
// claiming an already-claimed id is a no-op.
func (s *Store) Claim(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	claimedIncidents.Set(float64(len(s.ids)))
	return true
}

// Claimed returns a snapshot of all claimed identifiers in unspecified order.
func (s *Store) Claimed() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

// Len reports the number of claimed identifiers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
