package routes

import (
	"moviematch_server/controllers"
	"moviematch_server/services"

	"github.com/gorilla/mux"
)

// RegisterFollowRoutes sets up routes for follow graph operations under /api/follows
func RegisterFollowRoutes(r *mux.Router, followService *services.FollowService) {
	controller := controllers.NewFollowController(followService)

	followRouter := r.PathPrefix("/api/follows").Subrouter()
	followRouter.HandleFunc("", controller.FollowUser).Methods("POST")
	followRouter.HandleFunc("/followers", controller.GetFollowers).Methods("GET")
	followRouter.HandleFunc("/following", controller.GetFollowing).Methods("GET")
	followRouter.HandleFunc("/counts", controller.GetFollowCounts).Methods("GET")
	followRouter.HandleFunc("/{userId}", controller.UnfollowUser).Methods("DELETE")
	followRouter.HandleFunc("/{userId}/status", controller.GetFollowStatus).Methods("GET")
}
