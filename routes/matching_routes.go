package routes

import (
	"moviematch_server/controllers"
	"moviematch_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchingRoutes sets up routes for compatibility scoring under /api/matching
func RegisterMatchingRoutes(r *mux.Router, matchingService *services.MatchingService) {
	controller := controllers.NewMatchingController(matchingService)

	matchingRouter := r.PathPrefix("/api/matching").Subrouter()
	matchingRouter.HandleFunc("", controller.GetMatchingUsers).Methods("GET")
	matchingRouter.HandleFunc("/{userId}", controller.GetMatching).Methods("GET")
	matchingRouter.HandleFunc("/{userId}/common-movies", controller.GetCommonMovies).Methods("GET")
}
