package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"moviematch_server/services"

	"github.com/gorilla/mux"
)

// FollowController handles requests for the follow graph
type FollowController struct {
	FollowService *services.FollowService
}

// NewFollowController creates a new instance of FollowController
func NewFollowController(followService *services.FollowService) *FollowController {
	return &FollowController{FollowService: followService}
}

type followRequest struct {
	UserID string `json:"userId"`
}

// FollowUser creates a follow edge from the session user to the target.
func (c *FollowController) FollowUser(w http.ResponseWriter, r *http.Request) {
	var payload followRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.UserID == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := c.FollowService.Follow(context.TODO(), payload.UserID); err != nil {
		writeFollowError(w, err, "Failed to follow user")
		return
	}

	json.NewEncoder(w).Encode(map[string]string{
		"message": "User followed successfully",
		"userId":  payload.UserID,
	})
}

// UnfollowUser deletes the follow edge from the session user to the target.
func (c *FollowController) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := c.FollowService.Unfollow(context.TODO(), userID); err != nil {
		writeFollowError(w, err, "Failed to unfollow user")
		return
	}

	json.NewEncoder(w).Encode(map[string]string{
		"message": "User unfollowed successfully",
		"userId":  userID,
	})
}

// GetFollowStatus reports whether the session user follows the target.
func (c *FollowController) GetFollowStatus(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	json.NewEncoder(w).Encode(map[string]interface{}{
		"userId":      userID,
		"isFollowing": c.FollowService.IsFollowing(context.TODO(), userID),
	})
}

// GetFollowers lists the users following the given user (query param, the
// session user when omitted).
func (c *FollowController) GetFollowers(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	json.NewEncoder(w).Encode(c.FollowService.GetFollowers(context.TODO(), userID))
}

// GetFollowing lists the users the given user follows.
func (c *FollowController) GetFollowing(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	json.NewEncoder(w).Encode(c.FollowService.GetFollowing(context.TODO(), userID))
}

// GetFollowCounts returns the follower/following totals.
func (c *FollowController) GetFollowCounts(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	json.NewEncoder(w).Encode(c.FollowService.GetFollowCounts(context.TODO(), userID))
}

func writeFollowError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		http.Error(w, "User not authenticated", http.StatusUnauthorized)
	case errors.Is(err, services.ErrSelfFollow):
		http.Error(w, "Cannot follow yourself", http.StatusBadRequest)
	default:
		log.Printf("%s: %v\n", message, err)
		http.Error(w, message, http.StatusInternalServerError)
	}
}
