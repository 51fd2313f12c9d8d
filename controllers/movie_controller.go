package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"moviematch_server/services"
)

// MovieController proxies the external movie catalog
type MovieController struct {
	MovieService *services.MovieService
}

// NewMovieController creates a new instance of MovieController
func NewMovieController(movieService *services.MovieService) *MovieController {
	return &MovieController{MovieService: movieService}
}

// GetTrendingMovies returns this week's trending movies.
func (c *MovieController) GetTrendingMovies(w http.ResponseWriter, r *http.Request) {
	response, err := c.MovieService.GetTrendingMovies(context.TODO())
	if err != nil {
		log.Printf("Failed to fetch trending movies: %v\n", err)
		http.Error(w, "Failed to fetch movies", http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(response)
}

// GetTopRatedMovies returns the top-rated movies.
func (c *MovieController) GetTopRatedMovies(w http.ResponseWriter, r *http.Request) {
	response, err := c.MovieService.GetTopRatedMovies(context.TODO())
	if err != nil {
		log.Printf("Failed to fetch top rated movies: %v\n", err)
		http.Error(w, "Failed to fetch movies", http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(response)
}

// GetUpcomingMovies returns the upcoming movies.
func (c *MovieController) GetUpcomingMovies(w http.ResponseWriter, r *http.Request) {
	response, err := c.MovieService.GetUpcomingMovies(context.TODO())
	if err != nil {
		log.Printf("Failed to fetch upcoming movies: %v\n", err)
		http.Error(w, "Failed to fetch movies", http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(response)
}
