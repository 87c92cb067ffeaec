// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sync"
	"time"
)

// DashboardStatus is the state of a viewer's dashboard.
type DashboardStatus string

const (
	// DashboardStatusLoading is the initial state and the state after every filter change.
	DashboardStatusLoading DashboardStatus = "loading"
	// DashboardStatusReady means every fetch and aggregation succeeded.
	DashboardStatusReady DashboardStatus = "ready"
	// DashboardStatusError means a fetch failed; Result is empty.
	DashboardStatusError DashboardStatus = "error"
)

// DashboardState is the snapshot of one viewer's latest fetch cycle.
// Result is only set when Status is ready.
type DashboardState struct {
	Status     DashboardStatus
	Generation int64
	Error      string
	Result     *DashboardResult
	UpdatedAt  time.Time
}

// StateStore keeps the latest dashboard snapshot per viewer.
type StateStore interface {
	// Get returns the viewer's snapshot, false when none was recorded.
	Get(key ViewKey) (DashboardState, bool)

	// Set records the snapshot unless a newer generation is already stored.
	// Returns false when the snapshot was discarded as stale.
	Set(key ViewKey, state DashboardState) bool
}

// InMemoryStateStore is a simple in-memory implementation of StateStore.
type InMemoryStateStore struct {
	mu     sync.RWMutex
	states map[ViewKey]DashboardState
}

// NewInMemoryStateStore creates a new in-memory state store.
func NewInMemoryStateStore() *InMemoryStateStore {
	return &InMemoryStateStore{
		states: make(map[ViewKey]DashboardState),
	}
}

// Get returns the snapshot for a viewer.
func (s *InMemoryStateStore) Get(key ViewKey) (DashboardState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[key]
	return state, ok
}

// Set stores the snapshot for a viewer if it is not older than the stored one.
func (s *InMemoryStateStore) Set(key ViewKey, state DashboardState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.states[key]; ok && current.Generation > state.Generation {
		return false
	}
	s.states[key] = state
	return true
}
