package handlers

import (
	"errors"
	"net/http"

	roomRepo "mealroom/database/repository/room"
	"mealroom/middleware"
	"mealroom/models"
	"mealroom/services/history"
	"mealroom/services/room"
	"mealroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HistoryHandler serves the per-device recently-visited-rooms list.
type HistoryHandler struct {
	Service history.HistoryService
	Rooms   room.RoomService
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(service history.HistoryService, rooms room.RoomService) *HistoryHandler {
	return &HistoryHandler{Service: service, Rooms: rooms}
}

// GetHistoryHandler returns the device's visits, newest first. Never fails
// on storage trouble; the list degrades to empty.
func (h *HistoryHandler) GetHistoryHandler(c *gin.Context) {
	visits, err := h.Service.Visits(c.Request.Context(), middleware.DeviceID(c))
	if err != nil {
		getLogger(c).Warn("failed to read history", zap.Error(err))
		visits = nil
	}
	if visits == nil {
		visits = make([]models.RoomVisit, 0)
	}
	c.JSON(http.StatusOK, visits)
}

// TouchHistoryHandler records a visit to the room named in the body.
func (h *HistoryHandler) TouchHistoryHandler(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	visited, err := h.Rooms.GetRoom(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found", "")
			return
		}
		getLogger(c).Error("failed to fetch room for history", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record visit", "")
		return
	}

	if err := h.Service.Touch(c.Request.Context(), middleware.DeviceID(c), *visited); err != nil {
		getLogger(c).Error("failed to record visit", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record visit", "")
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearHistoryHandler drops the device's visit list.
func (h *HistoryHandler) ClearHistoryHandler(c *gin.Context) {
	if err := h.Service.Clear(c.Request.Context(), middleware.DeviceID(c)); err != nil {
		getLogger(c).Error("failed to clear history", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to clear history", "")
		return
	}
	c.Status(http.StatusNoContent)
}
