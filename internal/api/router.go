package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ndelacroix/chatline-be/internal/api/handlers"
	"github.com/ndelacroix/chatline-be/internal/auth"
	"github.com/ndelacroix/chatline-be/internal/services"
)

// RouterOptions bundles the collaborators the router needs.
type RouterOptions struct {
	UserService       services.UserServiceProvider
	MessageService    services.MessageServiceProvider
	PresenceService   services.PresenceServiceProvider
	ModerationService services.ModerationServiceProvider
	EventService      services.EventServiceProvider
	Limiter           *auth.LimiterPool
	CORSOrigins       []string
}

// NewRouter creates and configures a new Chi router.
func NewRouter(opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(Metrics)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", auth.CallerIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if opts.Limiter != nil {
		r.Use(auth.RateLimit(opts.Limiter))
	}

	// Every request carrying a caller id refreshes that user's presence.
	r.Use(auth.Identity(opts.UserService))

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(opts.UserService)
	messageHandler := handlers.NewMessageHandler(opts.MessageService)
	presenceHandler := handlers.NewPresenceHandler(opts.PresenceService)
	moderationHandler := handlers.NewModerationHandler(opts.ModerationService)
	eventHandler := handlers.NewEventHandler(opts.EventService, opts.UserService)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", sessionHandler.Login)

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", messageHandler.List)
			r.Post("/", messageHandler.Create)
			r.Put("/{id}", messageHandler.Edit)
			r.Delete("/{id}", messageHandler.Delete)
		})

		r.Get("/stats", presenceHandler.Stats)
		r.Get("/online", presenceHandler.Online)
		r.Post("/ban/{targetId}", moderationHandler.Ban)
		r.Get("/events", eventHandler.GetRecent)
	})

	return r
}
