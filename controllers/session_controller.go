package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"moviematch_server/models"
	"moviematch_server/services"
)

// SessionController binds the identity provider's user to the backend
// session. Token verification happens upstream; the mobile client posts
// the resulting user here.
type SessionController struct {
	UserService    *services.UserService
	SessionService *services.SessionService
}

// NewSessionController creates a new instance of SessionController
func NewSessionController(userService *services.UserService, sessionService *services.SessionService) *SessionController {
	return &SessionController{UserService: userService, SessionService: sessionService}
}

// SignIn stores the posted user as the session user, lazily creating the
// profile on first login.
func (c *SessionController) SignIn(w http.ResponseWriter, r *http.Request) {
	var user models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	profile, err := c.UserService.EnsureUserProfile(context.TODO(), user)
	if err != nil {
		log.Printf("Failed to ensure profile: %v\n", err)
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	c.SessionService.SignIn(profile)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Signed in successfully",
		"user":    profile,
	})
}

// SignOut clears the session.
func (c *SessionController) SignOut(w http.ResponseWriter, r *http.Request) {
	c.SessionService.SignOut()
	json.NewEncoder(w).Encode(map[string]string{"message": "Signed out successfully"})
}

// GetSession returns the current session user.
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	user := c.SessionService.CurrentUser()
	if user == nil {
		http.Error(w, "No active session", http.StatusUnauthorized)
		return
	}
	json.NewEncoder(w).Encode(user)
}
