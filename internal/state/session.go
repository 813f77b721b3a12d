// Package state holds the process-local stores the application owns: the
// signed-in user, the product browser filters and a snapshot of settings.
package state

import (
	"sync"

	"litepos/internal/model"
)

// Session holds at most one authenticated user.
type Session struct {
	mu   sync.RWMutex
	user *model.User
}

func NewSession() *Session { return &Session{} }

// Login replaces the held user.
func (s *Session) Login(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

func (s *Session) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == model.RoleAdmin
}
