package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/slotswapper/backend/models"
)

func createSwapRequest(t *testing.T, router *gin.Engine, token string, mySlotID, theirSlotID uint) uint {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/swap/request", token, gin.H{
		"mySlotId": mySlotID, "theirSlotId": theirSlotID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	decode(t, w, &resp)
	require.NotZero(t, resp.ID)
	return resp.ID
}

func listSwapRequests(t *testing.T, router *gin.Engine, token string) []models.SwapRequest {
	t.Helper()
	w := doRequest(t, router, http.MethodGet, "/swap/requests", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var requests []models.SwapRequest
	decode(t, w, &requests)
	return requests
}

func respondToSwap(t *testing.T, router *gin.Engine, token string, requestID uint, accept bool) int {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, fmt.Sprintf("/swap/respond/%d", requestID), token, gin.H{
		"accept": accept,
	})
	return w.Code
}

func TestSwappableSlotsExcludeOwnAndBusy(t *testing.T) {
	router := setupRouter(t)
	_, tokenA := registerUser(t, router, "alice")
	_, tokenB := registerUser(t, router, "bob")

	createEvent(t, router, tokenA, "Alice swappable", models.EventSwappable)
	createEvent(t, router, tokenA, "Alice busy", models.EventBusy)
	bobSlot := createEvent(t, router, tokenB, "Bob swappable", models.EventSwappable)

	w := doRequest(t, router, http.MethodGet, "/swap/swappable-slots", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var slots []models.Event
	decode(t, w, &slots)
	require.Len(t, slots, 1)
	require.Equal(t, bobSlot.ID, slots[0].ID)
	// the owner is included so callers can show who they'd swap with
	require.Equal(t, "bob", slots[0].Owner.Name)
}

func TestCreateSwapRequest(t *testing.T) {
	router := setupRouter(t)
	aliceID, tokenA := registerUser(t, router, "alice")
	bobID, tokenB := registerUser(t, router, "bob")

	mySlot := createEvent(t, router, tokenA, "Alice slot", models.EventSwappable)
	theirSlot := createEvent(t, router, tokenB, "Bob slot", models.EventSwappable)

	requestID := createSwapRequest(t, router, tokenA, mySlot.ID, theirSlot.ID)

	// visible to both sides, PENDING, responder derived from the target slot
	for _, token := range []string{tokenA, tokenB} {
		requests := listSwapRequests(t, router, token)
		require.Len(t, requests, 1)
		require.Equal(t, requestID, requests[0].ID)
		require.Equal(t, models.SwapPending, requests[0].Status)
		require.Equal(t, aliceID, requests[0].RequesterID)
		require.Equal(t, bobID, requests[0].ResponderID)
	}
}

func TestCreateSwapRequestForForeignSlotIsForbidden(t *testing.T) {
	router := setupRouter(t)
	_, tokenA := registerUser(t, router, "alice")
	_, tokenB := registerUser(t, router, "bob")
	_, tokenC := registerUser(t, router, "carol")

	bobSlot := createEvent(t, router, tokenB, "Bob slot", models.EventSwappable)
	carolSlot := createEvent(t, router, tokenC, "Carol slot", models.EventSwappable)

	// Alice offers Bob's slot as her own
	w := doRequest(t, router, http.MethodPost, "/swap/request", tokenA, gin.H{
		"mySlotId": bobSlot.ID, "theirSlotId": carolSlot.ID,
	})
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
}

func TestCreateSwapRequestMissingSlot(t *testing.T) {
	router := setupRouter(t)
	_, tokenA := registerUser(t, router, "alice")
	mySlot := createEvent(t, router, tokenA, "Alice slot", models.EventSwappable)

	w := doRequest(t, router, http.MethodPost, "/swap/request", tokenA, gin.H{
		"mySlotId": mySlot.ID, "theirSlotId": 9999,
	})
	require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestCreateSwapRequestWithOwnTargetIsRejected(t *testing.T) {
	router := setupRouter(t)
	_, tokenA := registerUser(t, router, "alice")

	slot1 := createEvent(t, router, tokenA, "Slot 1", models.EventSwappable)
	slot2 := createEvent(t, router, tokenA, "Slot 2", models.EventSwappable)

	w := doRequest(t, router, http.MethodPost, "/swap/request", tokenA, gin.H{
		"mySlotId": slot1.ID, "theirSlotId": slot2.ID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = doRequest(t, router, http.MethodPost, "/swap/request", tokenA, gin.H{
		"mySlotId": slot1.ID, "theirSlotId": slot1.ID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestAcceptSwapExchangesOwnership(t *testing.T) {
	router := setupRouter(t)
	aliceID, tokenA := registerUser(t, router, "alice")
	bobID, tokenB := registerUser(t, router, "bob")

	e1 := createEvent(t, router, tokenA, "E1", models.EventSwappable)
	e2 := createEvent(t, router, tokenB, "E2", models.EventSwappable)

	requestID := createSwapRequest(t, router, tokenA, e1.ID, e2.ID)

	require.Equal(t, http.StatusOK, respondToSwap(t, router, tokenB, requestID, true))

	// E1 now belongs to Bob, E2 to Alice, both BUSY
	eventsA := listEvents(t, router, tokenA)
	require.Len(t, eventsA, 1)
	require.Equal(t, e2.ID, eventsA[0].ID)
	require.Equal(t, aliceID, eventsA[0].OwnerID)
	require.Equal(t, models.EventBusy, eventsA[0].Status)

	eventsB := listEvents(t, router, tokenB)
	require.Len(t, eventsB, 1)
	require.Equal(t, e1.ID, eventsB[0].ID)
	require.Equal(t, bobID, eventsB[0].OwnerID)
	require.Equal(t, models.EventBusy, eventsB[0].Status)

	requests := listSwapRequests(t, router, tokenA)
	require.Len(t, requests, 1)
	require.Equal(t, models.SwapAccepted, requests[0].Status)
}

func TestRejectSwapLeavesOwnershipAlone(t *testing.T) {
	router := setupRouter(t)
	_, tokenA := registerUser(t, router, "alice")
	_, tokenB := registerUser(t, router, "bob")

	e1 := createEvent(t, router, tokenA, "E1", models.EventSwappable)
	e2 := createEvent(t, router, tokenB, "E2", models.EventSwappable)

	requestID := createSwapRequest(t, router, tokenA, e1.ID, e2.ID)

	require.Equal(t, http.StatusOK, respondToSwap(t, router, tokenB, requestID, false))

	eventsA := listEvents(t, router, tokenA)
	require.Len(t, eventsA, 1)
	require.Equal(t, e1.ID, eventsA[0].ID)
	require.Equal(t, models.EventSwappable, eventsA[0].Status)

	eventsB := listEvents(t, router, tokenB)
	require.Len(t, eventsB, 1)
	require.Equal(t, e2.ID, eventsB[0].ID)

	requests := listSwapRequests(t, router, tokenB)
	require.Equal(t, models.SwapRejected, requests[0].Status)
}

func TestRespondByNonResponderIsForbidden(t *testing.T) {
	router := setupRouter(t)
	_, tokenA := registerUser(t, router, "alice")
	_, tokenB := registerUser(t, router, "bob")
	_, tokenC := registerUser(t, router, "carol")

	e1 := createEvent(t, router, tokenA, "E1", models.EventSwappable)
	e2 := createEvent(t, router, tokenB, "E2", models.EventSwappable)

	requestID := createSwapRequest(t, router, tokenA, e1.ID, e2.ID)

	// neither the requester nor a third party may respond
	require.Equal(t, http.StatusForbidden, respondToSwap(t, router, tokenA, requestID, true))
	require.Equal(t, http.StatusForbidden, respondToSwap(t, router, tokenC, requestID, true))
}

func TestRespondToUnknownRequestIsNotFound(t *testing.T) {
	router := setupRouter(t)
	_, token := registerUser(t, router, "alice")

	require.Equal(t, http.StatusNotFound, respondToSwap(t, router, token, 9999, true))
}

func TestDoubleRespondIsConflict(t *testing.T) {
	router := setupRouter(t)
	aliceID, tokenA := registerUser(t, router, "alice")
	bobID, tokenB := registerUser(t, router, "bob")

	e1 := createEvent(t, router, tokenA, "E1", models.EventSwappable)
	e2 := createEvent(t, router, tokenB, "E2", models.EventSwappable)

	requestID := createSwapRequest(t, router, tokenA, e1.ID, e2.ID)

	require.Equal(t, http.StatusOK, respondToSwap(t, router, tokenB, requestID, true))
	require.Equal(t, http.StatusConflict, respondToSwap(t, router, tokenB, requestID, true))
	require.Equal(t, http.StatusConflict, respondToSwap(t, router, tokenB, requestID, false))

	// ownership reflects only the first response
	eventsA := listEvents(t, router, tokenA)
	require.Len(t, eventsA, 1)
	require.Equal(t, e2.ID, eventsA[0].ID)
	require.Equal(t, aliceID, eventsA[0].OwnerID)

	eventsB := listEvents(t, router, tokenB)
	require.Len(t, eventsB, 1)
	require.Equal(t, e1.ID, eventsB[0].ID)
	require.Equal(t, bobID, eventsB[0].OwnerID)
}

func TestRespondAfterRejectIsConflict(t *testing.T) {
	router := setupRouter(t)
	_, tokenA := registerUser(t, router, "alice")
	_, tokenB := registerUser(t, router, "bob")

	e1 := createEvent(t, router, tokenA, "E1", models.EventSwappable)
	e2 := createEvent(t, router, tokenB, "E2", models.EventSwappable)

	requestID := createSwapRequest(t, router, tokenA, e1.ID, e2.ID)

	require.Equal(t, http.StatusOK, respondToSwap(t, router, tokenB, requestID, false))
	require.Equal(t, http.StatusConflict, respondToSwap(t, router, tokenB, requestID, true))

	// rejected request never moves ownership
	eventsA := listEvents(t, router, tokenA)
	require.Equal(t, e1.ID, eventsA[0].ID)
	require.Equal(t, models.EventSwappable, eventsA[0].Status)
}
