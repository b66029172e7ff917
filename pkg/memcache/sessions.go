package mem

import (
	"sync"
	"time"
)

// SessionStore keeps the server-side view of issued admin sessions so a
// token can be revoked before its signed expiry.
type SessionStore interface {
	Put(sessionID string, email string, ttl time.Duration)

	// Valid reports whether the session exists and has not expired.
	Valid(sessionID string) bool

	// Revoke removes the session (logout).
	Revoke(sessionID string)
}

type sessionEntry struct {
	email     string
	expiresAt time.Time
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

func NewSessions() *Sessions {
	return &Sessions{
		data: make(map[string]sessionEntry),
	}
}

func (s *Sessions) Put(sessionID string, email string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = sessionEntry{
		email:     email,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Sessions) Valid(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, sessionID) // cleanup expired
		return false
	}
	return true
}

func (s *Sessions) Revoke(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}
