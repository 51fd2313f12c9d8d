package routes

import (
	"moviematch_server/controllers"
	"moviematch_server/services"

	"github.com/gorilla/mux"
)

// RegisterFavoritesRoutes sets up routes for favorites operations under /api/favorites
func RegisterFavoritesRoutes(r *mux.Router, favoritesService *services.FavoritesService) {
	controller := controllers.NewFavoritesController(favoritesService)

	favoritesRouter := r.PathPrefix("/api/favorites").Subrouter()
	favoritesRouter.HandleFunc("", controller.GetFavorites).Methods("GET")
	favoritesRouter.HandleFunc("", controller.AddFavorite).Methods("POST")
	favoritesRouter.HandleFunc("/ids", controller.GetFavoriteIDs).Methods("GET")
	favoritesRouter.HandleFunc("/toggle", controller.ToggleFavorite).Methods("POST")
	favoritesRouter.HandleFunc("/movie/{movieId}", controller.GetFavoritesForMovie).Methods("GET")
	favoritesRouter.HandleFunc("/{movieId}", controller.RemoveFavorite).Methods("DELETE")
	favoritesRouter.HandleFunc("/{movieId}/status", controller.GetFavoriteStatus).Methods("GET")
}
