// Package metrics provides the injected metrics sink the assessment services
// report into. The decision engine itself never touches metrics; services own
// the increments, and the sink is safe for concurrent turns.
package metrics

import (
	"sync"

	"github.com/quietharbor/haven/internal/domain"
)

// Sink receives counter events from the assessment services.
type Sink interface {
	TierObserved(tier domain.CrisisTier)
	InterventionServed(it domain.InterventionType)
	CrisisOverride()
	MappingFallback()
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	TiersSeen         map[domain.CrisisTier]uint64
	InterventionsSent map[domain.InterventionType]uint64
	CrisisOverrides   uint64
	MappingFallbacks  uint64
}

// NoopSink ignores all events.
type NoopSink struct{}

func (NoopSink) TierObserved(domain.CrisisTier)             {}
func (NoopSink) InterventionServed(domain.InterventionType) {}
func (NoopSink) CrisisOverride()                            {}
func (NoopSink) MappingFallback()                           {}

// CounterSink is an in-memory Sink with locked increments, safe for turns
// running in parallel.
type CounterSink struct {
	mu                sync.Mutex
	tiersSeen         map[domain.CrisisTier]uint64
	interventionsSent map[domain.InterventionType]uint64
	crisisOverrides   uint64
	mappingFallbacks  uint64
}

// NewCounterSink creates an empty CounterSink.
func NewCounterSink() *CounterSink {
	return &CounterSink{
		tiersSeen:         make(map[domain.CrisisTier]uint64),
		interventionsSent: make(map[domain.InterventionType]uint64),
	}
}

func (s *CounterSink) TierObserved(tier domain.CrisisTier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tiersSeen[tier]++
}

func (s *CounterSink) InterventionServed(it domain.InterventionType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interventionsSent[it]++
}

func (s *CounterSink) CrisisOverride() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.crisisOverrides++
}

func (s *CounterSink) MappingFallback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mappingFallbacks++
}

// Snapshot returns a copy of all counters.
func (s *CounterSink) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		TiersSeen:         make(map[domain.CrisisTier]uint64, len(s.tiersSeen)),
		InterventionsSent: make(map[domain.InterventionType]uint64, len(s.interventionsSent)),
		CrisisOverrides:   s.crisisOverrides,
		MappingFallbacks:  s.mappingFallbacks,
	}
	for k, v := range s.tiersSeen {
		snap.TiersSeen[k] = v
	}
	for k, v := range s.interventionsSent {
		snap.InterventionsSent[k] = v
	}
	return snap
}
