package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"ai-process-scheduler/backend/internal/api"
	"ai-process-scheduler/backend/internal/auth"
	"ai-process-scheduler/backend/internal/engine"
	"ai-process-scheduler/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	eng, cleanup, err := engine.FromConfig(cfg)
	if err != nil {
		log.Fatal("Failed to build engine:", err)
	}
	defer cleanup()

	authManager, err := auth.New(cfg.Auth.JWTSecret, cfg.Auth.AdminUser, cfg.Auth.AdminPassword, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatal("Failed to build auth manager:", err)
	}

	hub := api.NewHub()
	eng.OnResult(hub.Broadcast)

	// Background cycles keep the live stream fed between API reads.
	go eng.Run(context.Background(), cfg.Server.RefreshInterval, false)

	r := gin.Default()
	api.SetupRoutes(r, api.NewHandlers(eng, eng.History(), hub), authManager)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("AI Process Scheduler API starting on %s", addr)
	log.Printf("   Health: http://%s/health", addr)
	log.Printf("   API: http://%s/api/v1/", addr)

	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
