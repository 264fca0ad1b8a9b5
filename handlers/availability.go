package handlers

import (
	"net/http"
	"strconv"

	"hoofline/models"
	"hoofline/services/availability"
	"hoofline/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the availability engine over HTTP.
type AvailabilityHandler struct {
	Engine availability.Engine
}

func NewAvailabilityHandler(engine availability.Engine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// parseQueryOptions reads duration and the optional customer coordinates.
func parseQueryOptions(c *gin.Context) (availability.QueryOptions, bool) {
	var opts availability.QueryOptions

	duration, err := strconv.Atoi(c.Query("durationMinutes"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "durationMinutes must be an integer")
		return opts, false
	}
	opts.ServiceDurationMin = duration

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" || lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "lat and lon must both be valid numbers")
			return opts, false
		}
		point := models.NewGeoPoint(lat, lon)
		opts.CustomerLocation = &point
	}
	return opts, true
}

// GetDayAvailability returns one provider day's bookable slots.
func (h *AvailabilityHandler) GetDayAvailability(c *gin.Context) {
	providerID := c.Param("providerID")
	date := c.Query("date")

	opts, ok := parseQueryOptions(c)
	if !ok {
		return
	}

	day, err := h.Engine.GetDayAvailability(c.Request.Context(), providerID, date, opts)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// GetWeekAvailability returns seven consecutive days of bookable slots.
func (h *AvailabilityHandler) GetWeekAvailability(c *gin.Context) {
	providerID := c.Param("providerID")
	startDate := c.Query("startDate")

	opts, ok := parseQueryOptions(c)
	if !ok {
		return
	}

	week, err := h.Engine.GetWeekAvailability(c.Request.Context(), providerID, startDate, opts)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}
