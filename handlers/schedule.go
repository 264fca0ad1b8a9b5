package handlers

import (
	"net/http"
	"time"

	scheduleRepo "hoofline/database/repository/schedule"
	"hoofline/models"
	"hoofline/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes provider calendar settings: weekly template rows
// and per-date exceptions.
type ScheduleHandler struct {
	Repo scheduleRepo.ScheduleRepository
}

func NewScheduleHandler(repo scheduleRepo.ScheduleRepository) *ScheduleHandler {
	return &ScheduleHandler{Repo: repo}
}

// UpsertWeeklyHours overwrites one weekday's template row.
func (h *ScheduleHandler) UpsertWeeklyHours(c *gin.Context) {
	var req models.WeeklyHours
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req.ProviderID = c.Param("providerID")

	if req.Weekday < 0 || req.Weekday > 6 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "weekday must be 0-6")
		return
	}
	if !req.IsClosed && req.Start >= req.End {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "start must be before end when open")
		return
	}

	if _, err := h.Repo.GetProviderByID(req.ProviderID); err != nil {
		utils.RespondError(c, err)
		return
	}
	if err := h.Repo.UpsertWeeklyHours(&req); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// UpsertDateException creates or replaces the exception for one date.
func (h *ScheduleHandler) UpsertDateException(c *gin.Context) {
	var req models.DateException
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req.ProviderID = c.Param("providerID")

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date must be YYYY-MM-DD")
		return
	}
	if !req.IsClosed && req.Start >= req.End {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "start must be before end when open")
		return
	}
	if req.WorkLocation != nil && !req.WorkLocation.Geo.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "workLocation coordinates out of range")
		return
	}

	if _, err := h.Repo.GetProviderByID(req.ProviderID); err != nil {
		utils.RespondError(c, err)
		return
	}
	if err := h.Repo.UpsertDateException(&req); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// DeleteDateException removes the exception for one date, restoring the
// weekly template.
func (h *ScheduleHandler) DeleteDateException(c *gin.Context) {
	if err := h.Repo.DeleteDateException(c.Param("providerID"), c.Param("date")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
