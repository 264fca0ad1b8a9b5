package handlers

import (
	"net/http"

	"hoofline/models"
	"hoofline/services/booking"
	"hoofline/services/lifecycle"
	"hoofline/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking creation and lifecycle transitions.
type BookingHandler struct {
	Bookings  *booking.Service
	Lifecycle *lifecycle.Service
}

func NewBookingHandler(bookings *booking.Service, lc *lifecycle.Service) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Lifecycle: lc}
}

// CreateBooking creates a pending booking (or a confirmed one for manual
// provider entries).
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req booking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Bookings.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// TransitionBooking applies one booking status transition.
func (h *BookingHandler) TransitionBooking(c *gin.Context) {
	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Lifecycle.TransitionBookingStatus(c.Param("bookingID"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
