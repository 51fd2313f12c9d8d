package services

import (
	"sync"

	"moviematch_server/models"
)

// AuthStateListener is invoked after every session transition. The user is
// nil on sign-out.
type AuthStateListener func(user *models.UserProfile)

// SessionService holds the current signed-in user. Authentication itself is
// delegated to the external identity provider; this service only mirrors
// the resulting session so repositories can consult it synchronously.
//
// It is an explicit injected dependency rather than a package global, so a
// sign-out (or a test teardown) fully clears session-scoped state.
type SessionService struct {
	mu        sync.RWMutex
	user      *models.UserProfile
	listeners []AuthStateListener
}

func NewSessionService() *SessionService {
	return &SessionService{}
}

// SignIn stores the user as the current session user and notifies
// auth-state listeners.
func (ss *SessionService) SignIn(user *models.UserProfile) {
	ss.mu.Lock()
	ss.user = user
	listeners := make([]AuthStateListener, len(ss.listeners))
	copy(listeners, ss.listeners)
	ss.mu.Unlock()

	for _, listener := range listeners {
		listener(user)
	}
}

// SignOut clears the session and notifies auth-state listeners with nil.
func (ss *SessionService) SignOut() {
	ss.mu.Lock()
	ss.user = nil
	listeners := make([]AuthStateListener, len(ss.listeners))
	copy(listeners, ss.listeners)
	ss.mu.Unlock()

	for _, listener := range listeners {
		listener(nil)
	}
}

// CurrentUser returns the session user, or nil when nobody is signed in.
func (ss *SessionService) CurrentUser() *models.UserProfile {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.user
}

// OnAuthStateChanged registers a listener for session transitions.
func (ss *SessionService) OnAuthStateChanged(listener AuthStateListener) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.listeners = append(ss.listeners, listener)
}
