package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"moviematch_server/services"

	"github.com/gorilla/mux"
)

// FavoritesController handles requests for the session user's favorites
type FavoritesController struct {
	FavoritesService *services.FavoritesService
}

// NewFavoritesController creates a new instance of FavoritesController
func NewFavoritesController(favoritesService *services.FavoritesService) *FavoritesController {
	return &FavoritesController{FavoritesService: favoritesService}
}

type favoriteRequest struct {
	MovieID    int    `json:"movieId"`
	Title      string `json:"title"`
	Genre      string `json:"genre"`
	PosterPath string `json:"posterPath"`
}

// GetFavorites returns the cached favorites display list.
func (c *FavoritesController) GetFavorites(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(c.FavoritesService.FavoriteMovies())
}

// GetFavoriteIDs returns the cached favorite movie ids.
func (c *FavoritesController) GetFavoriteIDs(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(c.FavoritesService.FavoriteIDs())
}

// AddFavorite adds a movie to the session user's favorites.
func (c *FavoritesController) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var payload favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := c.FavoritesService.AddToFavorites(context.TODO(), payload.MovieID, payload.Title, payload.Genre, payload.PosterPath); err != nil {
		writeFavoritesError(w, err, "Failed to add favorite")
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Favorite added successfully",
		"movieId": payload.MovieID,
	})
}

// RemoveFavorite removes a movie from the session user's favorites.
func (c *FavoritesController) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(mux.Vars(r)["movieId"])
	if err != nil {
		http.Error(w, "Invalid movie id", http.StatusBadRequest)
		return
	}

	if err := c.FavoritesService.RemoveFromFavorites(context.TODO(), movieID); err != nil {
		writeFavoritesError(w, err, "Failed to remove favorite")
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Favorite removed successfully",
		"movieId": movieID,
	})
}

// ToggleFavorite flips the favorite state of a movie.
func (c *FavoritesController) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var payload favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := c.FavoritesService.ToggleFavorite(context.TODO(), payload.MovieID, payload.Title, payload.Genre, payload.PosterPath); err != nil {
		writeFavoritesError(w, err, "Failed to toggle favorite")
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":    "Favorite toggled successfully",
		"movieId":    payload.MovieID,
		"isFavorite": c.FavoritesService.IsFavorite(payload.MovieID),
	})
}

// GetFavoriteStatus reports whether a movie is in the session user's
// favorites. Served from the local cache.
func (c *FavoritesController) GetFavoriteStatus(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(mux.Vars(r)["movieId"])
	if err != nil {
		http.Error(w, "Invalid movie id", http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"movieId":    movieID,
		"isFavorite": c.FavoritesService.IsFavorite(movieID),
	})
}

// GetFavoritesForMovie returns who favorited a movie, across all users.
func (c *FavoritesController) GetFavoritesForMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(mux.Vars(r)["movieId"])
	if err != nil {
		http.Error(w, "Invalid movie id", http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode(c.FavoritesService.GetFavoritesForMovie(context.TODO(), movieID))
}

func writeFavoritesError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, services.ErrUnauthenticated) {
		http.Error(w, "User not authenticated", http.StatusUnauthorized)
		return
	}
	log.Printf("%s: %v\n", message, err)
	http.Error(w, message, http.StatusInternalServerError)
}
