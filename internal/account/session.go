package account

import (
	"context"
	"sync"
)

// Session is the in-memory view of who is logged in. It is read from
// storage once by Restore and afterwards only changes through Set and
// Clear; it is never re-synced with the stored record.
type Session struct {
	mu   sync.RWMutex
	user *User
}

// Restore resolves the stored session through CurrentSession.
func Restore(ctx context.Context, s *Store) (*Session, error) {
	u, err := s.CurrentSession(ctx)
	if err != nil {
		return &Session{}, err
	}
	return &Session{user: u}, nil
}

// Current returns a copy of the active user.
func (s *Session) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Set replaces the active user.
func (s *Session) Set(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
		return
	}
	cp := *u
	s.user = &cp
}

// Clear forgets the active user.
func (s *Session) Clear() {
	s.Set(nil)
}
