package session

import (
	"sync"

	"photo-vault-go/pkg/models"
)

// Session holds the signed-in user and their bearer credential. It is the
// single source of identity for every authenticated call; consumers read
// the token, they never refresh or rewrite it.
type Session struct {
	mu    sync.RWMutex
	user  *models.User
	token string
	subs  []func(established bool)
}

func New() *Session {
	return &Session{}
}

// Establish records a signed-in user and notifies subscribers.
func (s *Session) Establish(user *models.User, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	subs := append([]func(bool){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(true)
	}
}

// Clear drops the session (logout) and notifies subscribers.
func (s *Session) Clear() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	subs := append([]func(bool){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(false)
	}
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// OnChange registers a callback invoked after the session is established
// or cleared. Callbacks run on the caller's goroutine, outside the lock.
func (s *Session) OnChange(fn func(established bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
