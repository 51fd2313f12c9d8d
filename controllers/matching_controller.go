package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"moviematch_server/services"

	"github.com/gorilla/mux"
)

// defaultMinMatchPercentage is the threshold for the batch matching list
// when the caller does not specify one.
const defaultMinMatchPercentage = 75

// MatchingController handles taste-compatibility requests
type MatchingController struct {
	MatchingService *services.MatchingService
}

// NewMatchingController creates a new instance of MatchingController
func NewMatchingController(matchingService *services.MatchingService) *MatchingController {
	return &MatchingController{MatchingService: matchingService}
}

// GetMatching returns the compatibility score between the session user and
// the target user.
func (c *MatchingController) GetMatching(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	json.NewEncoder(w).Encode(c.MatchingService.CalculateMatching(context.TODO(), userID))
}

// GetCommonMovies returns the movies both users favorited.
func (c *MatchingController) GetCommonMovies(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	json.NewEncoder(w).Encode(c.MatchingService.GetCommonMovies(context.TODO(), userID))
}

// GetMatchingUsers returns all users at or above the min percentage,
// sorted descending.
func (c *MatchingController) GetMatchingUsers(w http.ResponseWriter, r *http.Request) {
	minPercent := defaultMinMatchPercentage
	if raw := r.URL.Query().Get("min"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid min percentage", http.StatusBadRequest)
			return
		}
		minPercent = parsed
	}

	json.NewEncoder(w).Encode(c.MatchingService.GetMatchingUsers(context.TODO(), minPercent))
}
