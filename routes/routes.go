package routes

import (
	"hoofline/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all endpoints for the availability and route
// engine.
func RegisterRoutes(
	r *gin.Engine,
	availabilityHandler *handlers.AvailabilityHandler,
	bookingHandler *handlers.BookingHandler,
	routeHandler *handlers.RouteHandler,
	scheduleHandler *handlers.ScheduleHandler,
) {
	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	{
		providers := api.Group("/providers/:providerID")
		{
			providers.GET("/availability", availabilityHandler.GetDayAvailability)
			providers.GET("/availability/week", availabilityHandler.GetWeekAvailability)
			providers.PUT("/schedule/weekly", scheduleHandler.UpsertWeeklyHours)
			providers.PUT("/schedule/exceptions", scheduleHandler.UpsertDateException)
			providers.DELETE("/schedule/exceptions/:date", scheduleHandler.DeleteDateException)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.PUT("/:bookingID/status", bookingHandler.TransitionBooking)
		}

		routeOrders := api.Group("/routes")
		{
			routeOrders.POST("", routeHandler.CreateRoute)
			routeOrders.PUT("/:routeID/status", routeHandler.TransitionRoute)
			routeOrders.PUT("/:routeID/stops/reorder", routeHandler.ReorderStops)
			routeOrders.PUT("/:routeID/stops/:stopID/status", routeHandler.TransitionStop)
			routeOrders.DELETE("/:routeID/stops/:stopID", routeHandler.CancelStop)
		}
	}
}
