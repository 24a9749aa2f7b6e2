package websocket

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/slotswapper/backend/config"
	"github.com/slotswapper/backend/utils"
)

// originChecker applies the same origin allowlist the HTTP CORS layer
// uses. Requests without an Origin header come from non-browser clients
// and are allowed through.
func originChecker(origins []string) func(r *http.Request) bool {
	allowAll := len(origins) == 1 && origins[0] == "*"
	allowed := make(map[string]bool, len(origins))
	for _, origin := range origins {
		allowed[origin] = true
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowAll {
			return true
		}
		return allowed[origin]
	}
}

// Handler upgrades an authenticated connection and registers it with the
// hub. Browsers cannot set headers on websocket requests, so the bearer
// token is carried in the "token" query parameter instead.
func Handler(hub *Hub, cfg *config.Config) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(cfg.CORSOrigins),
	}

	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is required"})
			return
		}

		userID, err := utils.ParseToken(token, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// Upgrade HTTP connection to WebSocket
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("error upgrading connection: %v", err)
			return
		}

		client := &Client{
			hub:    hub,
			conn:   conn,
			send:   make(chan []byte, 256),
			userID: userID,
		}

		client.hub.register <- client

		// Start goroutines for reading and writing
		go client.readPump()
		go client.writePump()
	}
}
