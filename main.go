package main

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/slotswapper/backend/config"
	"github.com/slotswapper/backend/controllers"
	"github.com/slotswapper/backend/database"
	"github.com/slotswapper/backend/docs"
	"github.com/slotswapper/backend/middleware"
	"github.com/slotswapper/backend/websocket"
)

// @title           SlotSwapper API
// @version         1.0
// @description     API Server for swapping calendar slot ownership between users
// @host            localhost:8080
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Notification hub
	hub := websocket.NewHub()
	go hub.Run()

	ctl := controllers.New(db, cfg, hub)

	// Set up Swagger info
	docs.SwaggerInfo.Title = "SlotSwapper API"
	docs.SwaggerInfo.Description = "API Server for swapping calendar slot ownership between users"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Set up router
	router := gin.Default()

	// CORS middleware
	router.Use(corsMiddleware(cfg.CORSOrigins))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "service": "SlotSwapper API", "version": "1.0.0"})
	})

	// Authentication routes
	rl := middleware.NewRateLimiter(5, 10)
	auth := router.Group("/auth")
	auth.Use(middleware.RateLimit(rl))
	{
		auth.POST("/register", ctl.Register)
		auth.POST("/login", ctl.Login)
	}

	// Protected event routes
	events := router.Group("/events")
	events.Use(middleware.JWTAuth(cfg.JWTSecret))
	{
		events.GET("", ctl.GetEvents)
		events.POST("", ctl.CreateEvent)
		events.PUT("/:id", ctl.UpdateEvent)
		events.DELETE("/:id", ctl.DeleteEvent)
	}

	// Protected swap routes
	swap := router.Group("/swap")
	swap.Use(middleware.JWTAuth(cfg.JWTSecret))
	{
		swap.GET("/swappable-slots", ctl.GetSwappableSlots)
		swap.POST("/request", ctl.CreateSwapRequest)
		swap.GET("/requests", ctl.GetSwapRequests)
		swap.POST("/respond/:id", ctl.RespondToSwap)
	}

	// WebSocket notifications
	router.GET("/ws", websocket.Handler(hub, cfg))

	// Start server
	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	allowAll := len(origins) == 1 && origins[0] == "*"
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
