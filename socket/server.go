package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server. Clients join a room
// named after their userId and receive push updates for that user.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, data map[string]string) {
		userID := data["userId"]
		if userID == "" {
			log.Println("❌ Invalid userId in join request")
			return
		}
		log.Printf("👥 Socket %s joined room for user %s\n", c.ID(), userID)
		c.Join(userID)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return server
}

// BroadcastFavoritesUpdate pushes the refreshed favorite ids to the user's
// room. Called after the favorites cache was mutated, never before.
func BroadcastFavoritesUpdate(server *socketio.Server, userID string, favoriteIDs []int) {
	if userID == "" {
		return
	}
	server.BroadcastToRoom("/", userID, "favoritesUpdated", map[string]interface{}{
		"userId":    userID,
		"favorites": favoriteIDs,
	})
}

// BroadcastFollowUpdate notifies both sides of a follow edge change.
func BroadcastFollowUpdate(server *socketio.Server, followerID, followingID string, following bool) {
	payload := map[string]interface{}{
		"followerId":  followerID,
		"followingId": followingID,
		"following":   following,
	}
	server.BroadcastToRoom("/", followerID, "followersUpdated", payload)
	server.BroadcastToRoom("/", followingID, "followersUpdated", payload)
}
