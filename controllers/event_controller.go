package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/slotswapper/backend/middleware"
	"github.com/slotswapper/backend/models"
)

type EventInput struct {
	Title     string             `json:"title" binding:"required"`
	StartTime time.Time          `json:"start_time" binding:"required"`
	EndTime   time.Time          `json:"end_time" binding:"required"`
	Status    models.EventStatus `json:"status" binding:"omitempty,oneof=BUSY SWAPPABLE"`
}

// GetEvents godoc
// @Summary List the authenticated user's events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Event "List of events"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /events/ [get]
func (ctl *Controller) GetEvents(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	var events []models.Event
	if err := ctl.db.Where("owner_id = ?", userID).Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create a calendar event
// @Description Creates an event owned by the authenticated user, BUSY by default
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventInput true "Event"
// @Success 201 {object} models.Event "Created event"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /events/ [post]
func (ctl *Controller) CreateEvent(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = models.EventBusy
	}

	event := models.Event{
		Title:     input.Title,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    status,
		OwnerID:   userID,
	}

	if err := ctl.db.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Updates an event owned by the authenticated user. Responds 404
// @Description whether the event is missing or owned by someone else.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param event body EventInput true "Event"
// @Success 200 {object} models.Event "Updated event"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /events/{id} [put]
func (ctl *Controller) UpdateEvent(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Ownership is part of the query: a foreign event 404s like a missing one
	var event models.Event
	if err := ctl.db.Where("id = ? AND owner_id = ?", eventID, userID).First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	event.Title = input.Title
	event.StartTime = input.StartTime
	event.EndTime = input.EndTime
	if input.Status != "" {
		event.Status = input.Status
	}

	if err := ctl.db.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes an event owned by the authenticated user
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string "Event deleted"
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /events/{id} [delete]
func (ctl *Controller) DeleteEvent(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	result := ctl.db.Where("id = ? AND owner_id = ?", eventID, userID).Delete(&models.Event{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
