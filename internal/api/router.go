package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"linkhub/internal/config"
	"linkhub/internal/discord"
	"linkhub/internal/registry"
	"linkhub/internal/session"
	"linkhub/internal/store"
	"linkhub/internal/tags"
)

type Server struct {
	router *chi.Mux
	config *config.Config
}

func NewServer(
	cfg *config.Config,
	st store.DocumentStore,
	reg *registry.Registry,
	admins *registry.AdminService,
	engine *tags.Engine,
	sessions *session.Manager,
	presence *discord.PresenceClient,
	invites *discord.InviteClient,
) *Server {
	authHandler := NewAuthHandler(reg, sessions)
	userHandler := NewUserHandler(reg, sessions, engine, cfg.Server.BaseURL)
	profileHandler := NewProfileHandler(reg, engine, presence, invites)
	adminHandler := NewAdminHandler(reg, admins, engine)
	serverInfoHandler := NewServerInfoHandler(cfg.Server.Name, cfg.Server.BaseURL)
	healthHandler := NewHealthHandler(st)

	authMiddleware := NewAuthMiddleware(sessions, reg, admins)

	r := chi.NewRouter()
	r.Use(slogRequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(corsMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", healthHandler.Check)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(maxBodySizeMiddleware(1 << 20)) // 1 MB
		r.Get("/server/info", serverInfoHandler.GetInfo)
		r.Get("/profiles", profileHandler.List)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		r.Route("/users/me", func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Get("/", userHandler.GetMe)
			r.Patch("/", userHandler.UpdateMe)
			r.Put("/publish", userHandler.SetPublished)
			r.Delete("/", userHandler.DeleteMe)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Use(authMiddleware.RequireAdmin)
			r.Get("/users", adminHandler.ListUsers)
			r.Put("/users/{slug}/password", adminHandler.ResetPassword)
			r.Put("/users/{slug}/publish", adminHandler.SetPublished)
			r.Delete("/users/{slug}", adminHandler.Terminate)
		})
	})

	// Published profiles live at the root, e.g. /kiriko.
	r.Get("/{slug}", profileHandler.Get)

	return &Server{router: r, config: cfg}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
