package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social-analytics-backend/internal/shared/middleware"
	"social-analytics-backend/internal/shared/response"
	"social-analytics-backend/pkg/container"
)

// =====================================================
// ROUTES
// =====================================================

func registerRoutes(engine *gin.Engine, c *container.Container) {
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger())
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS())

	// Liveness probe
	engine.GET("/health", func(ctx *gin.Context) {
		dbErr := c.DB.HealthCheck(ctx.Request.Context())
		cacheErr := c.Cache.Ping(ctx.Request.Context())

		status := "healthy"
		code := http.StatusOK
		if dbErr != nil || cacheErr != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		ctx.JSON(code, gin.H{
			"status":   status,
			"database": healthLabel(dbErr),
			"cache":    healthLabel(cacheErr),
			"version":  c.Config.App.Version,
		})
	})

	v1 := engine.Group("/api/v1")

	// Auth
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}

	// Accounts
	accounts := v1.Group("/accounts")
	{
		accounts.POST("", c.AccountHandler.RegisterAccount)
		accounts.GET("", c.AccountHandler.ListAccounts)
		accounts.GET("/:username", c.AccountHandler.GetAccount)
	}

	// Posts (read-only)
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.ListPosts)
		posts.GET("/recent", c.PostHandler.GetRecentPosts)
		posts.GET("/hashtags/trending", c.PostHandler.GetTrendingHashtags)
		posts.GET("/:username", c.PostHandler.GetAccountPosts)
	}

	// Analytics
	analytics := v1.Group("/analytics")
	{
		analytics.GET("/health", c.AnalyticsHandler.HealthCheck)
		analytics.GET("/accounts", c.AnalyticsHandler.GetAvailableAccounts)
		analytics.POST("/compare", c.AnalyticsHandler.CompareAccounts)
		analytics.POST("/batch", c.AnalyticsHandler.BatchAnalytics)

		analytics.GET("/:username/engagement", c.AnalyticsHandler.GetEngagementRate)
		analytics.GET("/:username/summary", c.AnalyticsHandler.GetAccountSummary)
		analytics.GET("/:username/content", c.AnalyticsHandler.GetContentPerformance)
		analytics.GET("/:username/hashtags", c.AnalyticsHandler.GetHashtagPerformance)
		analytics.GET("/:username/timing", c.AnalyticsHandler.GetTimingAnalysis)
		analytics.GET("/:username/growth", c.AnalyticsHandler.GetGrowthTrend)
		analytics.GET("/:username/strategy", c.AnalyticsHandler.GetContentStrategy)
		analytics.GET("/:username/dashboard", c.AnalyticsHandler.GetDashboard)
	}

	// Collection (protected: triggering scrapes costs provider credits)
	collect := v1.Group("/collect")
	collect.Use(middleware.Auth(c.JWTManager))
	{
		collect.POST("", c.CollectionHandler.CollectAll)
		collect.GET("/status", c.CollectionHandler.Status)
		collect.POST("/:username", c.CollectionHandler.CollectAccount)
	}

	engine.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "SYS_404", "Route not found")
	})
}

func healthLabel(err error) string {
	if err != nil {
		return "unreachable"
	}
	return "connected"
}
