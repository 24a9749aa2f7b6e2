package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/slotswapper/backend/config"
	"github.com/slotswapper/backend/controllers"
	"github.com/slotswapper/backend/database"
	"github.com/slotswapper/backend/middleware"
	"github.com/slotswapper/backend/models"
	"github.com/slotswapper/backend/websocket"
)

const testSecret = "test-secret"

// setupRouter builds a router wired like main against a fresh in-memory
// database, so tests exercise the full HTTP surface including middleware.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DBDriver:  "sqlite",
		DBDSN:     fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String()),
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
	}
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	hub := websocket.NewHub()
	go hub.Run()
	ctl := controllers.New(db, cfg, hub)

	router := gin.New()

	auth := router.Group("/auth")
	{
		auth.POST("/register", ctl.Register)
		auth.POST("/login", ctl.Login)
	}

	events := router.Group("/events")
	events.Use(middleware.JWTAuth(cfg.JWTSecret))
	{
		events.GET("", ctl.GetEvents)
		events.POST("", ctl.CreateEvent)
		events.PUT("/:id", ctl.UpdateEvent)
		events.DELETE("/:id", ctl.DeleteEvent)
	}

	swap := router.Group("/swap")
	swap.Use(middleware.JWTAuth(cfg.JWTSecret))
	{
		swap.GET("/swappable-slots", ctl.GetSwappableSlots)
		swap.POST("/request", ctl.CreateSwapRequest)
		swap.GET("/requests", ctl.GetSwapRequests)
		swap.POST("/respond/:id", ctl.RespondToSwap)
	}

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerUser creates an account and logs in, returning the user ID and a
// valid bearer token.
func registerUser(t *testing.T, router *gin.Engine, name string) (uint, string) {
	t.Helper()
	email := fmt.Sprintf("%s-%s@test.com", name, uuid.New().String()[:8])
	password := "testpass123"

	w := doRequest(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	decode(t, w, &created)

	w = doRequest(t, router, http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, w, &login)
	require.NotEmpty(t, login.AccessToken)

	return created.ID, login.AccessToken
}

func createEvent(t *testing.T, router *gin.Engine, token, title string, status models.EventStatus) models.Event {
	t.Helper()
	start := time.Now().Add(time.Hour).UTC()

	w := doRequest(t, router, http.MethodPost, "/events", token, gin.H{
		"title":      title,
		"start_time": start,
		"end_time":   start.Add(time.Hour),
		"status":     status,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var event models.Event
	decode(t, w, &event)
	return event
}

func listEvents(t *testing.T, router *gin.Engine, token string) []models.Event {
	t.Helper()
	w := doRequest(t, router, http.MethodGet, "/events", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var events []models.Event
	decode(t, w, &events)
	return events
}
