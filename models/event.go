package models

import (
	"time"
)

type EventStatus string

const (
	EventBusy      EventStatus = "BUSY"
	EventSwappable EventStatus = "SWAPPABLE"
)

type Event struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Title     string      `gorm:"size:255;not null" json:"title"`
	StartTime time.Time   `gorm:"not null" json:"start_time"`
	EndTime   time.Time   `gorm:"not null" json:"end_time"`
	Status    EventStatus `gorm:"size:20;default:'BUSY'" json:"status"` // BUSY, SWAPPABLE
	OwnerID   uint        `gorm:"not null;index" json:"owner_id"`
	Owner     User        `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
