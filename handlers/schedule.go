package handlers

import (
	"errors"
	"net/http"
	"time"

	"mealroom/models"
	"mealroom/services/planner"
	"mealroom/services/schedule"
	"mealroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves weekly and daily schedule reads and (re)generation.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(service schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: service}
}

// weekResponse is the wire shape for week-level endpoints.
type weekResponse struct {
	RoomCode  string                `json:"roomCode"`
	WeekStart string                `json:"weekStart"`
	Schedule  models.WeeklySchedule `json:"schedule"`
}

// dayResponse is the wire shape for day-level endpoints.
type dayResponse struct {
	RoomCode string               `json:"roomCode"`
	Date     string               `json:"date"`
	Schedule models.DailySchedule `json:"schedule"`
}

// GetWeekHandler returns the stored week containing :date, 404 when absent.
func (h *ScheduleHandler) GetWeekHandler(c *gin.Context) {
	code, date, ok := h.pathKey(c)
	if !ok {
		return
	}

	week, err := h.Service.GetWeek(c.Request.Context(), date, code)
	if err != nil {
		getLogger(c).Error("failed to fetch week", zap.String("room", code), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch schedule", "")
		return
	}
	if week == nil {
		utils.JSONError(c, http.StatusNotFound, "No schedule for this week", "Generate one first.")
		return
	}
	c.JSON(http.StatusOK, weekResponse{RoomCode: code, WeekStart: models.WeekKey(date), Schedule: *week})
}

// GenerateWeekHandler generates (or replaces) the full week.
func (h *ScheduleHandler) GenerateWeekHandler(c *gin.Context) {
	code, date, ok := h.pathKey(c)
	if !ok {
		return
	}

	week, err := h.Service.GenerateWeek(c.Request.Context(), date, code)
	if err != nil {
		getLogger(c).Error("failed to generate week", zap.String("room", code), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate schedule", "")
		return
	}
	c.JSON(http.StatusOK, weekResponse{RoomCode: code, WeekStart: models.WeekKey(date), Schedule: week})
}

// RegenerateDayHandler redraws a single day within the stored week.
func (h *ScheduleHandler) RegenerateDayHandler(c *gin.Context) {
	code, date, ok := h.pathKey(c)
	if !ok {
		return
	}
	day, err := models.ParseWeekday(c.Param("day"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid weekday", err.Error())
		return
	}

	week, err := h.Service.RegenerateDay(c.Request.Context(), date, day, code)
	if err != nil {
		h.writeMutationError(c, code, err)
		return
	}
	c.JSON(http.StatusOK, weekResponse{RoomCode: code, WeekStart: models.WeekKey(date), Schedule: week})
}

// RegenerateSlotHandler redraws one meal slot of one day.
func (h *ScheduleHandler) RegenerateSlotHandler(c *gin.Context) {
	code, date, ok := h.pathKey(c)
	if !ok {
		return
	}
	day, err := models.ParseWeekday(c.Param("day"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid weekday", err.Error())
		return
	}
	slot, err := models.ParseMealSlot(c.Param("slot"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid meal slot", err.Error())
		return
	}

	week, err := h.Service.RegenerateSlot(c.Request.Context(), date, day, slot, code)
	if err != nil {
		h.writeMutationError(c, code, err)
		return
	}
	c.JSON(http.StatusOK, weekResponse{RoomCode: code, WeekStart: models.WeekKey(date), Schedule: week})
}

// GetDayHandler returns the daily schedule for :date, 404 when absent.
func (h *ScheduleHandler) GetDayHandler(c *gin.Context) {
	code, date, ok := h.pathKey(c)
	if !ok {
		return
	}

	daily, err := h.Service.GetDay(c.Request.Context(), date, code)
	if err != nil {
		getLogger(c).Error("failed to fetch day", zap.String("room", code), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch schedule", "")
		return
	}
	if daily == nil {
		utils.JSONError(c, http.StatusNotFound, "No schedule for this day", "Generate one first.")
		return
	}
	c.JSON(http.StatusOK, dayResponse{RoomCode: code, Date: date.Format(models.DateLayout), Schedule: *daily})
}

// GenerateDayHandler generates (or replaces) the schedule for one day.
func (h *ScheduleHandler) GenerateDayHandler(c *gin.Context) {
	code, date, ok := h.pathKey(c)
	if !ok {
		return
	}

	daily, err := h.Service.GenerateDay(c.Request.Context(), date, code)
	if err != nil {
		getLogger(c).Error("failed to generate day", zap.String("room", code), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate schedule", "")
		return
	}
	c.JSON(http.StatusOK, dayResponse{RoomCode: code, Date: date.Format(models.DateLayout), Schedule: daily})
}

// pathKey extracts the room code and date from the path; writes the 400
// response itself when the date is malformed.
func (h *ScheduleHandler) pathKey(c *gin.Context) (string, time.Time, bool) {
	date, err := models.ParseDate(c.Param("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return "", time.Time{}, false
	}
	return c.Param("code"), date, true
}

// writeMutationError maps regeneration failures onto HTTP statuses. A
// missing week or day is a 409: the client must generate before mutating.
func (h *ScheduleHandler) writeMutationError(c *gin.Context, code string, err error) {
	switch {
	case errors.Is(err, schedule.ErrWeekNotGenerated):
		utils.JSONError(c, http.StatusConflict, "Week not generated yet", "Generate the week first.")
	case errors.Is(err, planner.ErrDayNotGenerated):
		utils.JSONError(c, http.StatusConflict, "Day not generated yet", "Generate the day first.")
	default:
		getLogger(c).Error("schedule mutation failed", zap.String("room", code), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update schedule", "")
	}
}
