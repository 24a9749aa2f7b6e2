package controllers

import (
	"gorm.io/gorm"

	"github.com/slotswapper/backend/config"
	"github.com/slotswapper/backend/websocket"
)

// Controller bundles the handlers' shared dependencies: the database handle,
// the immutable configuration and the notification hub.
type Controller struct {
	db  *gorm.DB
	cfg *config.Config
	hub *websocket.Hub
}

func New(db *gorm.DB, cfg *config.Config, hub *websocket.Hub) *Controller {
	return &Controller{db: db, cfg: cfg, hub: hub}
}
