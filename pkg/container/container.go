// Package container wires the application dependency graph in one
// place: config, infrastructure, repositories, services, handlers.
package container

import (
	"context"
	"net/http"
	"time"

	"social-analytics-backend/internal/config"
	accountHandler "social-analytics-backend/internal/domains/account/handler"
	accountRepo "social-analytics-backend/internal/domains/account/repository"
	accountService "social-analytics-backend/internal/domains/account/service"
	analyticsHandler "social-analytics-backend/internal/domains/analytics/handler"
	analyticsService "social-analytics-backend/internal/domains/analytics/service"
	collectionHandler "social-analytics-backend/internal/domains/collection/handler"
	collectionService "social-analytics-backend/internal/domains/collection/service"
	"social-analytics-backend/internal/domains/collection/scraper"
	postHandler "social-analytics-backend/internal/domains/post/handler"
	postRepo "social-analytics-backend/internal/domains/post/repository"
	userHandler "social-analytics-backend/internal/domains/user/handler"
	userRepo "social-analytics-backend/internal/domains/user/repository"
	userService "social-analytics-backend/internal/domains/user/service"
	"social-analytics-backend/internal/infrastructure/cache"
	"social-analytics-backend/internal/infrastructure/database"
	"social-analytics-backend/internal/infrastructure/queue"
	"social-analytics-backend/pkg/jwt"
	"social-analytics-backend/pkg/logger"
)

// =====================================================
// DEPENDENCY CONTAINER
// =====================================================

type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *database.PostgresDB
	Cache      *cache.RedisCache
	TaskClient *queue.TaskClient
	JWTManager *jwt.Manager

	// Repositories
	AccountRepo accountRepo.AccountRepository
	PostRepo    postRepo.PostRepository
	UserRepo    userRepo.UserRepository

	// Services
	AccountService    accountService.AccountService
	AnalyticsService  analyticsService.AnalyticsService
	CollectionService collectionService.CollectionService
	UserService       userService.UserService

	// Handlers
	AccountHandler    *accountHandler.AccountHandler
	AnalyticsHandler  *analyticsHandler.AnalyticsHandler
	CollectionHandler *collectionHandler.CollectionHandler
	PostHandler       *postHandler.PostHandler
	UserHandler       *userHandler.UserHandler
}

// New builds the full dependency graph. Infrastructure connects in
// order: database, cache, queue client. Fails fast if either store
// is unreachable.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	// Step 1: database
	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}
	c.DB = database.NewPostgresDB(dbCfg)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, err
	}

	// Step 2: cache
	c.Cache = cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Connect(ctx); err != nil {
		c.DB.Close()
		return nil, err
	}

	// Step 3: queue client + auth
	c.TaskClient = queue.NewTaskClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Step 4: repositories
	c.AccountRepo = accountRepo.NewPostgresAccountRepository(c.DB.Pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(c.DB.Pool)
	c.UserRepo = userRepo.NewPostgresUserRepository(c.DB.Pool)

	// Step 5: services
	liveScraper := scraper.NewClient(cfg.Collector.APIToken,
		scraper.WithBaseURL(cfg.Collector.BaseURL),
		scraper.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Collector.TimeoutSeconds) * time.Second,
		}),
	)

	c.AccountService = accountService.NewAccountService(c.AccountRepo, c.PostRepo, c.TaskClient)
	c.AnalyticsService = analyticsService.NewAnalyticsService(
		c.AccountRepo, c.PostRepo, c.Cache,
		time.Duration(cfg.Cache.DashboardTTLSeconds)*time.Second,
	)
	c.CollectionService = collectionService.NewCollectionService(
		liveScraper, scraper.NewMockScraper(), c.AccountRepo, c.PostRepo,
	)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)

	// Step 6: handlers
	c.AccountHandler = accountHandler.NewAccountHandler(c.AccountService)
	c.AnalyticsHandler = analyticsHandler.NewAnalyticsHandler(c.AnalyticsService)
	c.CollectionHandler = collectionHandler.NewCollectionHandler(c.CollectionService, c.TaskClient)
	c.PostHandler = postHandler.NewPostHandler(c.PostRepo)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)

	logger.Info("🧩 [CONTAINER] Dependency graph ready", map[string]interface{}{
		"env": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases infrastructure resources in reverse init order.
func (c *Container) Cleanup() {
	if c.TaskClient != nil {
		if err := c.TaskClient.Close(); err != nil {
			logger.Warn("⚠️ [CONTAINER] Failed to close task client", err)
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Warn("⚠️ [CONTAINER] Failed to close cache", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("🧹 [CONTAINER] Resources released", nil)
}
