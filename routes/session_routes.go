package routes

import (
	"moviematch_server/controllers"
	"moviematch_server/services"

	"github.com/gorilla/mux"
)

// RegisterSessionRoutes sets up routes for session operations under /api/session
func RegisterSessionRoutes(r *mux.Router, userService *services.UserService, sessionService *services.SessionService) {
	controller := controllers.NewSessionController(userService, sessionService)

	sessionRouter := r.PathPrefix("/api/session").Subrouter()
	sessionRouter.HandleFunc("", controller.SignIn).Methods("POST")
	sessionRouter.HandleFunc("", controller.GetSession).Methods("GET")
	sessionRouter.HandleFunc("", controller.SignOut).Methods("DELETE")
}
