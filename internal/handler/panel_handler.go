package handler

import (
	"or-control-backend/internal/service"
	"or-control-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PanelHandler serves the read-only feed for wall-mounted display panels.
// Panels authenticate with a display key instead of a user session.
type PanelHandler struct {
	roomService *service.RoomService
}

func NewPanelHandler(roomService *service.RoomService) *PanelHandler {
	return &PanelHandler{
		roomService: roomService,
	}
}

// GetRooms returns the grid feed for display panels
func (h *PanelHandler) GetRooms(c *gin.Context) {
	utils.SuccessResponse(c, h.roomService.Grid())
}

// GetTimeline returns the day-axis feed for display panels
func (h *PanelHandler) GetTimeline(c *gin.Context) {
	utils.SuccessResponse(c, h.roomService.Timeline())
}
