package session

import (
	"sync"

	"carexpert/models"
	"carexpert/utils"

	"go.uber.org/zap"
)

// Store holds the process-wide authenticated user, nil meaning signed out.
// It is an explicit object passed to whatever needs it; reactivity is an
// explicit subscribe/notify contract rather than a hidden global.
type Store struct {
	mu   sync.RWMutex
	user *models.AuthUser
	subs map[int]func(*models.AuthUser)
	next int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(*models.AuthUser))}
}

// User returns the current user, or nil when signed out.
func (s *Store) User() *models.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Set replaces the current user and notifies subscribers.
func (s *Store) Set(user *models.AuthUser) {
	s.mu.Lock()
	s.user = user
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(user)
	}
}

// Clear signs the user out and notifies subscribers.
func (s *Store) Clear() {
	s.Set(nil)
}

// SetFromToken seeds the store from a session token's claims. The signature
// is not verified here; the claims drive display and action gating only, and
// the backend re-checks authorization on every credentialed request.
func (s *Store) SetFromToken(tokenString string) error {
	claims, err := utils.DecodeTokenClaims(tokenString)
	if err != nil {
		utils.GetLogger().Warn("Failed to decode session token", zap.Error(err))
		return err
	}
	s.Set(&models.AuthUser{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	})
	return nil
}

// Subscribe registers fn for every user change and returns an unsubscribe
// func. fn is not called with the current value on registration.
func (s *Store) Subscribe(fn func(*models.AuthUser)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshotSubs must be called with mu held.
func (s *Store) snapshotSubs() []func(*models.AuthUser) {
	out := make([]func(*models.AuthUser), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
