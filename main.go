package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ndelacroix/chatline-be/internal/api"
	"github.com/ndelacroix/chatline-be/internal/auth"
	"github.com/ndelacroix/chatline-be/internal/config"
	"github.com/ndelacroix/chatline-be/internal/database"
	"github.com/ndelacroix/chatline-be/internal/logger"
	"github.com/ndelacroix/chatline-be/internal/monitoring"
	"github.com/ndelacroix/chatline-be/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.LogLevel)

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up services
	eventService := services.NewEventService(db)
	userService := services.NewUserService(db, eventService)
	messageService := services.NewMessageService(db, userService, eventService)
	presenceService := services.NewPresenceService(db, cfg.PresenceWindow)
	moderationService := services.NewModerationService(db, userService, eventService)

	// Set up and run the background stats snapshotter
	snapshotter := monitoring.NewStatsSnapshotter(presenceService, eventService, cfg.SnapshotSchedule)
	if err := snapshotter.Run(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start stats snapshotter")
	}

	// Set up router
	router := api.NewRouter(api.RouterOptions{
		UserService:       userService,
		MessageService:    messageService,
		PresenceService:   presenceService,
		ModerationService: moderationService,
		EventService:      eventService,
		Limiter:           auth.NewLimiterPool(cfg.RateLimitRPS, cfg.RateLimitBurst),
		CORSOrigins:       cfg.CORSOrigins,
	})

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	snapshotter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
