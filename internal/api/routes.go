package api

import (
	"github.com/gin-gonic/gin"

	"ai-process-scheduler/backend/internal/auth"
)

func SetupRoutes(r *gin.Engine, handlers *Handlers, authManager *auth.Manager) {
	// Health check (no auth required)
	r.GET("/health", handlers.HealthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(auth.CORSMiddleware())
	v1.Use(auth.RateLimit(10, 20))

	// Public routes
	public := v1.Group("/")
	{
		public.GET("/processes", handlers.GetProcesses)
		public.GET("/history", handlers.GetHistory)
		public.GET("/live", handlers.Live)
		public.POST("/auth/login", authManager.Login)
	}

	// Protected routes: actuation touches real OS scheduling classes.
	protected := v1.Group("/")
	protected.Use(authManager.RequireAuth())
	{
		protected.POST("/actuate", handlers.Actuate)
	}
}
