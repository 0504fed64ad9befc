// File: services/agent/locks.go
package agent

import "sync"

// userLocks serializes message handling per user key, so a retried delivery
// cannot interleave a read and a write of the same negotiation state.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for a user, creating one if it doesn't exist, and
// returns the matching unlock.
func (l *userLocks) lock(userID string) func() {
	l.mu.Lock()
	m, exists := l.locks[userID]
	if !exists {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
