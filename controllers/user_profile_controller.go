package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"moviematch_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles requests related to user profiles
type UserProfileController struct {
	UserService *services.UserService
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(userService *services.UserService) *UserProfileController {
	return &UserProfileController{UserService: userService}
}

// SearchUsers filters users by display name or email substring.
func (c *UserProfileController) SearchUsers(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	users, err := c.UserService.SearchUsers(context.TODO(), term)
	if err != nil {
		log.Printf("Failed to search users: %v\n", err)
		http.Error(w, "Failed to search users", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(users)
}

// GetUserByID handles fetching a user profile by ID
func (c *UserProfileController) GetUserByID(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.UserService.GetUserByID(context.TODO(), userID)
	if err != nil {
		log.Printf("Failed to fetch profile: %v\n", err)
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(profile)
}
