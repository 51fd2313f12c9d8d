package routes

import (
	"moviematch_server/controllers"
	"moviematch_server/services"

	"github.com/gorilla/mux"
)

// RegisterMovieRoutes sets up routes for the movie catalog under /api/movies
func RegisterMovieRoutes(r *mux.Router, movieService *services.MovieService) {
	controller := controllers.NewMovieController(movieService)

	movieRouter := r.PathPrefix("/api/movies").Subrouter()
	movieRouter.HandleFunc("/trending", controller.GetTrendingMovies).Methods("GET")
	movieRouter.HandleFunc("/top-rated", controller.GetTopRatedMovies).Methods("GET")
	movieRouter.HandleFunc("/upcoming", controller.GetUpcomingMovies).Methods("GET")
}
