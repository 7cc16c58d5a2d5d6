package app

import (
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
)

// Store keeps sessions in memory, keyed by a random UUID. Sessions idle for
// longer than the TTL are dropped by Sweep; nothing survives a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty store.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the session for id and marks it as seen. Malformed ids miss.
func (s *Store) Get(id string) (*Session, bool) {
	if _, err := uuid.FromString(id); err != nil {
		return nil, false
	}
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if ok {
		sess.touch(s.now())
	}
	return sess, ok
}

// Create starts a new session and returns its id.
func (s *Store) Create() (string, *Session) {
	id := uuid.NewV4().String()
	sess := NewSession(s.now())
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return id, sess
}

// GetOrCreate returns the session for id, or a fresh one when id is unknown.
// created reports whether a new id was issued.
func (s *Store) GetOrCreate(id string) (sessionID string, sess *Session, created bool) {
	if sess, ok := s.Get(id); ok {
		return id, sess, false
	}
	sessionID, sess = s.Create()
	return sessionID, sess, true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops idle sessions and returns how many were removed.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
