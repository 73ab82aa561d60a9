// Package registry provides the in-memory agent store and skill discovery.
package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aleostudio/a2a-registry/internal/domain"
)

// ProbeOutcome reports the store-side effect of one liveness probe.
type ProbeOutcome struct {
	// Known is false when the endpoint was not registered, e.g. an
	// unregister raced the probe. The probe result is discarded.
	Known bool

	// Failures is the consecutive failure count after applying the result.
	Failures int

	// Evicted is true when the failure count reached the threshold and the
	// record was removed.
	Evicted bool

	// Name is the display name of the agent, captured before any eviction.
	Name string
}

// Store is a concurrency-safe map of registered agents keyed by normalized
// endpoint URL. A single mutex guards every operation, so readers never
// observe a half-written record and snapshots are consistent at the instant
// of capture.
type Store struct {
	mu          sync.Mutex
	agents      map[string]*domain.AgentRecord
	maxFailures int
}

// NewStore creates an empty store. maxFailures is the consecutive probe
// failure count at which a record is evicted.
func NewStore(maxFailures int) *Store {
	return &Store{
		agents:      make(map[string]*domain.AgentRecord),
		maxFailures: maxFailures,
	}
}

// Put inserts or replaces the record for endpoint. The failure counter is
// reset and a fresh registration ID is issued either way.
func (s *Store) Put(endpoint string, card domain.AgentCard) domain.AgentRecord {
	record := domain.AgentRecord{
		ID:           uuid.New().String(),
		Endpoint:     endpoint,
		Card:         card,
		RegisteredAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents[endpoint] = &record
	return record
}

// Remove deletes the record for endpoint. Returns domain.ErrAgentNotFound
// if it was not registered.
func (s *Store) Remove(endpoint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.agents[endpoint]; !ok {
		return domain.ErrAgentNotFound
	}
	delete(s.agents, endpoint)
	return nil
}

// Endpoints returns a sorted point-in-time list of registered endpoints.
func (s *Store) Endpoints() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	endpoints := make([]string, 0, len(s.agents))
	for endpoint := range s.agents {
		endpoints = append(endpoints, endpoint)
	}
	sort.Strings(endpoints)
	return endpoints
}

// Snapshot returns a point-in-time copy of every record, sorted by endpoint.
// Mutating the result never affects store state.
func (s *Store) Snapshot() []domain.AgentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]domain.AgentRecord, 0, len(s.agents))
	for _, record := range s.agents {
		records = append(records, copyRecord(record))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Endpoint < records[j].Endpoint })
	return records
}

// RecordProbeResult applies one liveness probe outcome. Success resets the
// failure counter; failure increments it and evicts the record once the
// threshold is reached. An unknown endpoint is a no-op.
func (s *Store) RecordProbeResult(endpoint string, ok bool) ProbeOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.agents[endpoint]
	if !exists {
		return ProbeOutcome{}
	}

	outcome := ProbeOutcome{Known: true, Name: record.Card.Name}
	if ok {
		record.Failures = 0
		return outcome
	}

	record.Failures++
	outcome.Failures = record.Failures
	if record.Failures >= s.maxFailures {
		delete(s.agents, endpoint)
		outcome.Evicted = true
	}
	return outcome
}

// Count returns the number of registered agents.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.agents)
}

// MaxFailures returns the configured eviction threshold.
func (s *Store) MaxFailures() int {
	return s.maxFailures
}

func copyRecord(record *domain.AgentRecord) domain.AgentRecord {
	out := *record
	out.Card.Skills = make([]domain.AgentSkill, len(record.Card.Skills))
	for i, skill := range record.Card.Skills {
		out.Card.Skills[i] = skill
		out.Card.Skills[i].Tags = append([]string(nil), skill.Tags...)
	}
	return out
}
