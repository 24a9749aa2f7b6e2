package models

import (
	"time"
)

type SwapStatus string

const (
	SwapPending  SwapStatus = "PENDING"
	SwapAccepted SwapStatus = "ACCEPTED"
	SwapRejected SwapStatus = "REJECTED"
)

type SwapRequest struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	RequesterID uint       `gorm:"not null;index" json:"requester_id"`
	Requester   User       `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	ResponderID uint       `gorm:"not null;index" json:"responder_id"`
	Responder   User       `gorm:"foreignKey:ResponderID" json:"responder,omitempty"`
	MySlotID    uint       `gorm:"not null" json:"my_slot_id"`
	MySlot      Event      `gorm:"foreignKey:MySlotID" json:"my_slot,omitempty"`
	TheirSlotID uint       `gorm:"not null" json:"their_slot_id"`
	TheirSlot   Event      `gorm:"foreignKey:TheirSlotID" json:"their_slot,omitempty"`
	Status      SwapStatus `gorm:"size:20;default:'PENDING'" json:"status"` // PENDING, ACCEPTED, REJECTED
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
