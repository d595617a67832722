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

// RoomHandler serves room creation and lookup.
type RoomHandler struct {
	Service room.RoomService
	History history.HistoryService
}

// NewRoomHandler creates a RoomHandler.
func NewRoomHandler(service room.RoomService, historySvc history.HistoryService) *RoomHandler {
	return &RoomHandler{Service: service, History: historySvc}
}

// CreateRoomHandler registers a new room and returns its code.
func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	created, err := h.Service.CreateRoom(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, room.ErrEmptyName):
			utils.JSONError(c, http.StatusBadRequest, "Room name must not be empty", "")
		case errors.Is(err, room.ErrCreationExhausted):
			logger.Error("room creation exhausted", zap.Error(err))
			utils.JSONError(c, http.StatusServiceUnavailable, "Could not allocate a room code", "Please try again.")
		default:
			logger.Error("failed to create room", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create room", "")
		}
		return
	}

	h.recordVisit(c, *created)
	c.JSON(http.StatusCreated, created)
}

// GetRoomHandler looks up a room by code. Lookup is case-insensitive.
func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	logger := getLogger(c)

	got, err := h.Service.GetRoom(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found", "")
			return
		}
		logger.Error("failed to fetch room", zap.String("code", c.Param("code")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch room", "")
		return
	}

	h.recordVisit(c, *got)
	c.JSON(http.StatusOK, got)
}

// recordVisit updates the device's visit history. Best-effort: joining a
// room must not fail because the history store is down.
func (h *RoomHandler) recordVisit(c *gin.Context, visited models.Room) {
	deviceID := middleware.DeviceID(c)
	if deviceID == "" {
		return
	}
	if err := h.History.Touch(c.Request.Context(), deviceID, visited); err != nil {
		getLogger(c).Warn("failed to record room visit", zap.String("code", visited.Code), zap.Error(err))
	}
}
