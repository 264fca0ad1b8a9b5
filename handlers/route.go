package handlers

import (
	"net/http"
	"time"

	"hoofline/models"
	"hoofline/services/lifecycle"
	"hoofline/services/routeplan"
	"hoofline/utils"

	"github.com/gin-gonic/gin"
)

// RouteHandler exposes route planning and route/stop lifecycle transitions.
type RouteHandler struct {
	Routes    *routeplan.Service
	Lifecycle *lifecycle.Service
}

func NewRouteHandler(routes *routeplan.Service, lc *lifecycle.Service) *RouteHandler {
	return &RouteHandler{Routes: routes, Lifecycle: lc}
}

// CreateRoute sequences and persists a new route order.
func (h *RouteHandler) CreateRoute(c *gin.Context) {
	var req struct {
		ProviderID string                `json:"providerId" binding:"required"`
		Type       models.RouteOrderType `json:"type" binding:"required"`
		Date       string                `json:"date" binding:"required"`
		StartTime  time.Time             `json:"startTime" binding:"required"`
		Stops      []routeplan.StopInput `json:"stops" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	route, err := h.Routes.CreateRoute(c.Request.Context(), req.ProviderID, req.Type, req.Date, req.StartTime, req.Stops)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

// ReorderStops applies an operator-specified stop order and recomputes ETAs.
func (h *RouteHandler) ReorderStops(c *gin.Context) {
	var req struct {
		StopIDs   []string  `json:"stopIds" binding:"required"`
		StartTime time.Time `json:"startTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	route, err := h.Routes.ReorderStops(c.Request.Context(), c.Param("routeID"), req.StopIDs, req.StartTime)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// CancelStop removes one stop from the itinerary and recomputes ETAs. The
// body may carry a startTime; without one the drive is re-simulated from now.
func (h *RouteHandler) CancelStop(c *gin.Context) {
	var req struct {
		StartTime time.Time `json:"startTime"`
	}
	_ = c.ShouldBindJSON(&req)
	if req.StartTime.IsZero() {
		req.StartTime = time.Now()
	}

	route, err := h.Routes.CancelStop(c.Request.Context(), c.Param("routeID"), c.Param("stopID"), req.StartTime)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// TransitionRoute applies one route order status transition.
func (h *RouteHandler) TransitionRoute(c *gin.Context) {
	var req struct {
		Status models.RouteOrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	route, err := h.Lifecycle.TransitionRouteStatus(c.Param("routeID"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// TransitionStop applies one stop status transition.
func (h *RouteHandler) TransitionStop(c *gin.Context) {
	var req struct {
		Status models.RouteStopStatus `json:"status" binding:"required"`
		Note   string                 `json:"note,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	route, err := h.Lifecycle.TransitionStopStatus(c.Param("routeID"), c.Param("stopID"), req.Status, req.Note)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}
