package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/slotswapper/backend/middleware"
	"github.com/slotswapper/backend/models"
)

type SwapRequestInput struct {
	MySlotID    uint `json:"mySlotId" binding:"required"`
	TheirSlotID uint `json:"theirSlotId" binding:"required"`
}

type SwapResponseInput struct {
	Accept *bool `json:"accept" binding:"required"`
}

var (
	errSwapNotPending = errors.New("swap request already processed")
	errSlotGone       = errors.New("slot no longer exists")
)

// GetSwappableSlots godoc
// @Summary List slots open for swapping
// @Description Returns SWAPPABLE events not owned by the authenticated user
// @Tags swap
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Event "Swappable slots"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /swap/swappable-slots [get]
func (ctl *Controller) GetSwappableSlots(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	var slots []models.Event
	if err := ctl.db.Where("status = ? AND owner_id != ?", models.EventSwappable, userID).
		Preload("Owner").
		Find(&slots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch swappable slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

// CreateSwapRequest godoc
// @Summary Propose a swap between two slots
// @Description Creates a PENDING swap request; the responder is the current
// @Description owner of the requested slot
// @Tags swap
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SwapRequestInput true "Swap proposal"
// @Success 201 {object} map[string]interface{} "Swap request created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Slot not owned by caller"
// @Failure 404 {object} map[string]string "Slot not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /swap/request [post]
func (ctl *Controller) CreateSwapRequest(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	var input SwapRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.MySlotID == input.TheirSlotID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot swap a slot with itself"})
		return
	}

	var mySlot, theirSlot models.Event
	if err := ctl.db.First(&mySlot, input.MySlotID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "One of the slots not found"})
		return
	}
	if err := ctl.db.First(&theirSlot, input.TheirSlotID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "One of the slots not found"})
		return
	}

	if mySlot.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only swap your own slots"})
		return
	}
	if theirSlot.OwnerID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot request a swap with your own slot"})
		return
	}

	swap := models.SwapRequest{
		RequesterID: userID,
		ResponderID: theirSlot.OwnerID,
		MySlotID:    mySlot.ID,
		TheirSlotID: theirSlot.ID,
		Status:      models.SwapPending,
	}

	if err := ctl.db.Create(&swap).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create swap request"})
		return
	}

	// Load relationships for the notification
	ctl.db.Preload("Requester").Preload("MySlot").Preload("TheirSlot").First(&swap, swap.ID)
	ctl.hub.NotifyUser(swap.ResponderID, "swap_request", swap)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Swap request created",
		"id":      swap.ID,
	})
}

// GetSwapRequests godoc
// @Summary List swap requests involving the authenticated user
// @Description Returns requests where the user is requester or responder
// @Tags swap
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SwapRequest "Swap requests"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /swap/requests [get]
func (ctl *Controller) GetSwapRequests(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)

	var requests []models.SwapRequest
	if err := ctl.db.Where("requester_id = ? OR responder_id = ?", userID, userID).
		Preload("Requester").Preload("Responder").
		Preload("MySlot").Preload("TheirSlot").
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch swap requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// RespondToSwap godoc
// @Summary Accept or reject a swap request
// @Description Only the responder may respond, and only while the request is
// @Description PENDING. Accepting exchanges ownership of the two slots and
// @Description marks both BUSY, atomically with the state transition.
// @Tags swap
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Swap request ID"
// @Param response body SwapResponseInput true "Response"
// @Success 200 {object} map[string]string "Response processed"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not the responder"
// @Failure 404 {object} map[string]string "Swap request not found"
// @Failure 409 {object} map[string]string "Request already processed"
// @Failure 500 {object} map[string]string "Server error"
// @Router /swap/respond/{id} [post]
func (ctl *Controller) RespondToSwap(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uint)
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid swap request ID"})
		return
	}

	var input SwapResponseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var swap models.SwapRequest
	if err := ctl.db.First(&swap, requestID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Swap request not found"})
		return
	}

	if swap.ResponderID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot respond to this request"})
		return
	}

	newStatus := models.SwapRejected
	if *input.Accept {
		newStatus = models.SwapAccepted
	}

	err = ctl.db.Transaction(func(tx *gorm.DB) error {
		// Guarded transition: only one responder can move the request out of
		// PENDING, concurrent calls see zero rows affected
		result := tx.Model(&models.SwapRequest{}).
			Where("id = ? AND status = ?", swap.ID, models.SwapPending).
			Update("status", newStatus)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errSwapNotPending
		}

		if newStatus != models.SwapAccepted {
			return nil
		}

		// Reload both slots by current ID and exchange ownership
		var mySlot, theirSlot models.Event
		if err := tx.First(&mySlot, swap.MySlotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errSlotGone
			}
			return err
		}
		if err := tx.First(&theirSlot, swap.TheirSlotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errSlotGone
			}
			return err
		}

		mySlot.OwnerID, theirSlot.OwnerID = theirSlot.OwnerID, mySlot.OwnerID
		mySlot.Status = models.EventBusy
		theirSlot.Status = models.EventBusy

		if err := tx.Save(&mySlot).Error; err != nil {
			return err
		}
		return tx.Save(&theirSlot).Error
	})

	switch {
	case errors.Is(err, errSwapNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": "Swap request already processed"})
		return
	case errors.Is(err, errSlotGone):
		c.JSON(http.StatusNotFound, gin.H{"error": "One of the slots no longer exists"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process swap response"})
		return
	}

	swap.Status = newStatus
	ctl.hub.NotifyUser(swap.RequesterID, "swap_response", swap)

	c.JSON(http.StatusOK, gin.H{
		"message": "Swap " + strings.ToLower(string(newStatus)) + " successfully",
	})
}
