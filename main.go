package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"moviematch_server/routes"
	"moviematch_server/services"
	"moviematch_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	sessionService := services.NewSessionService()
	userService := services.NewUserService(dynamoService, sessionService)
	favoritesService := services.NewFavoritesService(dynamoService, sessionService)
	followService := &services.FollowService{Dynamo: dynamoService, Session: sessionService, Users: userService}
	matchingService := &services.MatchingService{Dynamo: dynamoService, Session: sessionService}
	movieService := services.NewMovieServiceFromEnv()

	// Initialize the socket server and wire cache-update pushes
	socketServer := socket.NewSocketServer()
	favoritesService.OnFavoritesChanged(func(userID string, favoriteIDs []int) {
		socket.BroadcastFavoritesUpdate(socketServer, userID, favoriteIDs)
	})
	followService.OnFollowChanged(func(followerID, followingID string, following bool) {
		socket.BroadcastFollowUpdate(socketServer, followerID, followingID, following)
	})
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("Socket server error: %v\n", err)
		}
	}()
	defer socketServer.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to MovieMatch")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterSessionRoutes(r, userService, sessionService)
	routes.RegisterUserProfileRoutes(r, userService)
	routes.RegisterFavoritesRoutes(r, favoritesService)
	routes.RegisterFollowRoutes(r, followService)
	routes.RegisterMatchingRoutes(r, matchingService)
	routes.RegisterMovieRoutes(r, movieService)
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
