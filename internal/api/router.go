package api

import (
	"context"
	"net/http"
	"time"

	"github.com/content-planner-api/internal/database"
	"github.com/content-planner-api/internal/planner"
	"github.com/content-planner-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HealthChecker exposes database readiness to the health endpoint.
// database.DB satisfies it; tests use a stub.
type HealthChecker interface {
	Ready() bool
	Ping(ctx context.Context) error
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, view *planner.View, health HealthChecker, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	articleHandler := NewArticleHandler(services.Planner, log)
	dashboardHandler := NewDashboardHandler(view, log)

	// Health check
	router.GET("/health", healthCheck(health))

	api := router.Group("/api")
	{
		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.POST("", articleHandler.Upsert)
			articles.POST("/bulk", articleHandler.BulkUpsert)
			articles.GET("/:id", articleHandler.Get)
			articles.PATCH("/:id", articleHandler.Patch)
			articles.DELETE("/:id", articleHandler.Delete)
		}

		api.GET("/stats", articleHandler.Stats)
		api.GET("/dashboard", dashboardHandler.Render)
	}

	return router
}

// healthCheck reports process liveness and store readiness. The ping
// lets an unavailable store flip back to ready once the engine returns.
func healthCheck(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		health.Ping(ctx)

		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"dbReady": health.Ready(),
		})
	}
}

// Compile-time check that the database wrapper serves the health endpoint
var _ HealthChecker = (*database.DB)(nil)

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware tags every request with an id for log correlation
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("request_id", c.GetString("request_id")).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS for the browser dashboard
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
