package memory

import (
	"context"
	"sync"
	"time"

	"blended-advisor/internal/domain"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
// Sessions idle for longer than ttl are treated as gone; ttl <= 0 disables expiry.
type SessionStore struct {
	ttl   time.Duration
	clock func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

type session struct {
	answers   map[int]string
	expiresAt time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return NewSessionStoreWithClock(ttl, time.Now)
}

// NewSessionStoreWithClock allows deterministic expiry in tests.
func NewSessionStoreWithClock(ttl time.Duration, clock func() time.Time) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		clock:    clock,
		sessions: make(map[string]*session),
	}
}

func (s *SessionStore) Create(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.sessions[sessionID] = &session{
		answers:   make(map[int]string),
		expiresAt: s.expiry(),
	}
	return nil
}

func (s *SessionStore) SetAnswer(_ context.Context, sessionID string, question int, letter string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.liveLocked(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	sess.answers[question] = letter
	sess.expiresAt = s.expiry()
	return nil
}

func (s *SessionStore) Answers(_ context.Context, sessionID string) (map[int]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.liveLocked(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	out := make(map[int]string, len(sess.answers))
	for q, letter := range sess.answers {
		out[q] = letter
	}
	return out, nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Len reports how many sessions are held, expired ones included until swept.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) liveLocked(sessionID string) (*session, bool) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	if !sess.expiresAt.IsZero() && !sess.expiresAt.After(s.clock()) {
		return nil, false
	}
	return sess, true
}

// sweepLocked drops expired sessions; called on Create so abandoned sessions do not pile up.
func (s *SessionStore) sweepLocked() {
	now := s.clock()
	for id, sess := range s.sessions {
		if !sess.expiresAt.IsZero() && !sess.expiresAt.After(now) {
			delete(s.sessions, id)
		}
	}
}

func (s *SessionStore) expiry() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return s.clock().Add(s.ttl)
}
