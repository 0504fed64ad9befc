// File: services/agent/store.go
package agent

import (
	"context"
	"sync"

	"agendabot/models"
)

// StateStore keeps at most one pending negotiation per user, keyed by user
// identity, with last-writer-wins semantics. Get returns nil for a user with
// no pending negotiation (the Idle state).
type StateStore interface {
	Get(ctx context.Context, userID string) (*models.NegotiationState, error)
	Set(ctx context.Context, userID string, state *models.NegotiationState) error
	Clear(ctx context.Context, userID string) error
}

// MemoryStateStore is the process-scoped reference implementation. Pending
// negotiations never expire and are lost on restart.
type MemoryStateStore struct {
	mu     sync.RWMutex
	states map[string]models.NegotiationState
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: make(map[string]models.NegotiationState)}
}

func (s *MemoryStateStore) Get(ctx context.Context, userID string) (*models.NegotiationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[userID]
	if !ok {
		return nil, nil
	}
	// Copy so callers cannot mutate the stored state in place.
	out := state
	return &out, nil
}

func (s *MemoryStateStore) Set(ctx context.Context, userID string, state *models.NegotiationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = *state
	return nil
}

func (s *MemoryStateStore) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
	return nil
}
