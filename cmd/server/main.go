package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkhub/internal/api"
	"linkhub/internal/auth"
	"linkhub/internal/config"
	"linkhub/internal/discord"
	"linkhub/internal/registry"
	"linkhub/internal/session"
	"linkhub/internal/store"
	"linkhub/internal/tags"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting server", "name", cfg.Server.Name)

	var documentStore store.DocumentStore
	if cfg.Store.Bin != "" {
		documentStore = store.NewBinStore(cfg.Store.Endpoint, cfg.Store.Bin, cfg.Store.Key)
		slog.Info("document store configured", "endpoint", cfg.Store.Endpoint, "bin", cfg.Store.Bin)
	} else {
		documentStore = store.NewMemStore()
		slog.Warn("no store.bin configured, using in-memory document store")
	}

	reg := registry.New(documentStore, cfg.Auth.PasswordSalt)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	seeded, err := reg.Seed(startupCtx, cfg.Bootstrap)
	startupCancel()
	if err != nil {
		slog.Error("failed to seed bootstrap accounts", "error", err)
		os.Exit(1)
	}
	if seeded > 0 {
		slog.Info("seeded bootstrap accounts", "count", seeded)
	}

	admins := registry.NewAdminService(reg, cfg.Admins)

	special := make(map[string]tags.Tag, len(cfg.Tags.Special))
	for slug, t := range cfg.Tags.Special {
		special[slug] = tags.Tag{Label: t.Label, Class: t.Class}
	}
	engine := tags.NewEngine(special, cfg.Tags.OGLimit)

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	sessions := session.NewManager(tokens, cfg.Auth.SecureCookie)

	presence := discord.NewPresenceClient(cfg.Discord.PresenceURL)
	invites := discord.NewInviteClient(cfg.Discord.InviteURL)

	server := api.NewServer(cfg, documentStore, reg, admins, engine, sessions, presence, invites)

	addr := cfg.Addr()
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server,
	}

	go func() {
		slog.Info("server listening", "addr", addr, "base_url", cfg.Server.BaseURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}
