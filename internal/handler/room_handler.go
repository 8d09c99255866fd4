package handler

import (
	"errors"
	"net/http"
	"time"

	"or-control-backend/internal/service"
	"or-control-backend/internal/workflow"
	"or-control-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// SetStepRequest selects a workflow phase by index
type SetStepRequest struct {
	Index *int `json:"index" binding:"required"`
}

// SetEndTimeRequest carries the raw end time; null clears it
type SetEndTimeRequest struct {
	EndTime *time.Time `json:"end_time"`
}

// AdjustEndTimeRequest moves the end time one 15-minute step
type AdjustEndTimeRequest struct {
	Direction int `json:"direction" binding:"required,oneof=-1 1"`
}

// GetGrid returns the dashboard grid with header stats
func (h *RoomHandler) GetGrid(c *gin.Context) {
	utils.SuccessResponse(c, h.roomService.Grid())
}

// GetDetail returns the dial-screen payload for one room
func (h *RoomHandler) GetDetail(c *gin.Context) {
	view, err := h.roomService.Detail(c.Param("room_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	utils.SuccessResponse(c, view)
}

// OpenDetail starts the detail session for a room
func (h *RoomHandler) OpenDetail(c *gin.Context) {
	if err := h.roomService.OpenDetail(c.Param("room_id")); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	utils.MessageResponse(c, "Detail session opened")
}

// CloseDetail discards the detail session for a room
func (h *RoomHandler) CloseDetail(c *gin.Context) {
	h.roomService.CloseDetail(c.Param("room_id"))
	utils.MessageResponse(c, "Detail session closed")
}

// Pause freezes phase and end-time transitions for a room
func (h *RoomHandler) Pause(c *gin.Context) {
	paused, err := h.roomService.Pause(c.Param("room_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"changed": paused})
}

// Resume lifts a pause
func (h *RoomHandler) Resume(c *gin.Context) {
	resumed, err := h.roomService.Resume(c.Param("room_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"changed": resumed})
}

// Advance moves a room to its next workflow phase. A gated rejection is a
// 200 with changed=false, mirroring the silent no-op contract.
func (h *RoomHandler) Advance(c *gin.Context) {
	result, err := h.roomService.Advance(c.Param("room_id"), currentUserID(c))
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	utils.SuccessResponse(c, result)
}

// SetStep jumps a room to a specific workflow phase
func (h *RoomHandler) SetStep(c *gin.Context) {
	var req SetStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request. Index is required")
		return
	}

	result, err := h.roomService.SetStep(c.Param("room_id"), *req.Index, currentUserID(c))
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	utils.SuccessResponse(c, result)
}

// ToggleEmergency flips the emergency override
func (h *RoomHandler) ToggleEmergency(c *gin.Context) {
	result, err := h.roomService.ToggleEmergency(c.Param("room_id"), currentUserID(c))
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	utils.SuccessResponse(c, result)
}

// ToggleLock flips the forward-only lock
func (h *RoomHandler) ToggleLock(c *gin.Context) {
	result, err := h.roomService.ToggleLock(c.Param("room_id"), currentUserID(c))
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	utils.SuccessResponse(c, result)
}

// SetEndTime replaces the estimated end time; a null body value clears it
func (h *RoomHandler) SetEndTime(c *gin.Context) {
	var req SetEndTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.roomService.SetEndTime(c.Param("room_id"), req.EndTime, currentUserID(c))
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	utils.SuccessResponse(c, result)
}

// AdjustEndTime applies a +/- 15 minute end-time step
func (h *RoomHandler) AdjustEndTime(c *gin.Context) {
	var req AdjustEndTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request. Direction must be -1 or 1")
		return
	}

	dir := workflow.Increase
	if req.Direction < 0 {
		dir = workflow.Decrease
	}

	result, err := h.roomService.AdjustEndTime(c.Param("room_id"), dir, currentUserID(c))
	if err != nil {
		h.respondRoomError(c, err)
		return
	}
	utils.SuccessResponse(c, result)
}

// GetTimeline returns the day-axis view
func (h *RoomHandler) GetTimeline(c *gin.Context) {
	utils.SuccessResponse(c, h.roomService.Timeline())
}

func (h *RoomHandler) respondRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidStep):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update room")
	}
}

// currentUserID reads the authenticated user from the context, if any
func currentUserID(c *gin.Context) *uint {
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
