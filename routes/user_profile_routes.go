package routes

import (
	"moviematch_server/controllers"
	"moviematch_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for user profile operations under /api/users
func RegisterUserProfileRoutes(r *mux.Router, userService *services.UserService) {
	controller := controllers.NewUserProfileController(userService)

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.HandleFunc("/search", controller.SearchUsers).Methods("GET")
	userRouter.HandleFunc("/{userId}", controller.GetUserByID).Methods("GET")
}
