package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hoofline/config"
	"hoofline/cron"
	"hoofline/database"
	bookingRepoPkg "hoofline/database/repository/booking"
	routeRepoPkg "hoofline/database/repository/route"
	scheduleRepoPkg "hoofline/database/repository/schedule"
	"hoofline/handlers"
	"hoofline/middleware"
	"hoofline/routes"
	"hoofline/services/availability"
	bookingSvc "hoofline/services/booking"
	"hoofline/services/lifecycle"
	"hoofline/services/routeplan"
	"hoofline/services/routing"
	"hoofline/services/tasks"
	"hoofline/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitRoutingCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	routeRepo := routeRepoPkg.NewMongoRouteRepo()

	// routing client: OSRM upstream behind the Redis leg cache.
	callTimeout := time.Duration(config.AppConfig.RoutingTimeoutSeconds) * time.Second
	osrm := routing.NewOSRMClient(config.AppConfig.RoutingBaseURL, callTimeout)
	routingClient := routing.NewCachedClient(osrm)

	// services.
	engine := &availability.DefaultEngine{
		ScheduleRepo:    scheduleRepo,
		BookingRepo:     bookingRepo,
		Routing:         routingClient,
		GranularityMin:  config.AppConfig.SlotGranularityMin,
		TravelBufferMin: config.AppConfig.TravelBufferMin,
		WorkerLimit:     config.AppConfig.RoutingWorkerLimit,
		CallTimeout:     callTimeout,
	}

	reminders := tasks.NewAsynqReminderScheduler()
	lifecycleService := &lifecycle.Service{
		BookingRepo: bookingRepo,
		RouteRepo:   routeRepo,
		Reminders:   reminders,
	}
	bookingService := &bookingSvc.Service{
		BookingRepo:  bookingRepo,
		ScheduleRepo: scheduleRepo,
		Reminders:    reminders,
	}
	routeService := &routeplan.Service{
		RouteRepo:    routeRepo,
		ScheduleRepo: scheduleRepo,
		Sequencer: &routeplan.Sequencer{
			Routing:     routingClient,
			FallbackKmh: config.AppConfig.RoutingFallbackKmh,
			CallTimeout: callTimeout,
		},
	}

	// handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(engine)
	bookingHandler := handlers.NewBookingHandler(bookingService, lifecycleService)
	routeHandler := handlers.NewRouteHandler(routeService, lifecycleService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleRepo)

	routes.RegisterRoutes(router, availabilityHandler, bookingHandler, routeHandler, scheduleHandler)

	// background workers and monitors.
	cron.InitReminderWorker(cron.LogNotifier{})
	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"cache":   utils.GetCacheClient(),
			"routing": utils.GetRoutingCacheClient(),
		},
		database.MongoClient,
	)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
