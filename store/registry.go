package store

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type session struct {
	store    *Store
	lastSeen atomic.Int64 // unix nanoseconds
}

// Registry owns one Store per shopper session
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
	newID    func() string
	now      func() time.Time
}

// NewRegistry creates an empty session registry
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*session),
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Get returns the store of an existing session and marks it as seen
func (r *Registry) Get(id string) (*Store, bool) {
	if id == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen.Store(r.now().UnixNano())
	return sess.store, true
}

// GetOrCreate returns the store for id, creating a new session with a fresh id
// when id is empty or unknown. created reports whether a session was created.
func (r *Registry) GetOrCreate(id string) (sessionID string, s *Store, created bool) {
	if existing, ok := r.Get(id); ok {
		return id, existing, false
	}

	sess := &session{store: New()}
	sess.lastSeen.Store(r.now().UnixNano())

	r.mu.Lock()
	defer r.mu.Unlock()
	sessionID = r.newID()
	r.sessions[sessionID] = sess
	return sessionID, sess.store, true
}

// Delete forgets a session
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// EvictIdle forgets every session not seen for longer than maxIdle and reports how many were dropped
func (r *Registry) EvictIdle(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle).UnixNano()

	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, sess := range r.sessions {
		if sess.lastSeen.Load() < cutoff {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
