package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"

	statusUsecases "lumen/internal/application/status/usecases"
	userUsecases "lumen/internal/application/user/usecases"
	"lumen/internal/infrastructure/auth"
	"lumen/internal/infrastructure/cache"
	"lumen/internal/infrastructure/config"
	"lumen/internal/infrastructure/repository"
	"lumen/internal/interfaces/http/handlers"
	"lumen/internal/interfaces/http/middleware"
	"lumen/internal/interfaces/http/oauthstate"
	"lumen/internal/shared/logger"
)

// Container wires infrastructure, use cases, handlers, and middleware
// together and owns the resources it opens.
type Container struct {
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
	router *Router
}

// NewContainer builds the full dependency graph. It performs provider
// discovery and, when enabled, opens the Redis connection, so it needs a
// context with a sensible deadline.
func NewContainer(ctx context.Context, cfg *config.Config, log logger.Interface, db *mongo.Database) (*Container, error) {
	metadata, err := auth.DiscoverProvider(ctx, cfg.OAuth.Google.DiscoveryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OAuth provider: %w", err)
	}
	log.Infow("discovered OAuth provider",
		"issuer", metadata.Issuer,
		"authorization_endpoint", metadata.AuthorizationEndpoint)

	oauthClient := auth.NewGoogleOAuthClient(cfg.OAuth.Google, metadata)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.TTLHours)

	stateTTL := time.Duration(cfg.OAuth.StateTTLSeconds) * time.Second

	var redisClient *redis.Client
	var stateCarrier oauthstate.Carrier
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		stateStore := cache.NewRedisStateStore(redisClient, "oauth:state", stateTTL)
		stateCarrier = oauthstate.NewRedisCarrier(stateStore)
		log.Infow("using redis-backed OAuth state store", "addr", cfg.Redis.GetAddr())
	} else {
		stateCarrier = oauthstate.NewCookieCarrier(cfg.Auth.JWT.Secret, stateTTL, cfg.Server.Mode == "release")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db, log)
	statusRepo := repository.NewStatusRepository(db)

	// Use cases
	initiateOAuthUC := userUsecases.NewInitiateOAuthLoginUseCase(oauthClient, log)
	handleOAuthUC := userUsecases.NewHandleOAuthCallbackUseCase(userRepo, oauthClient, jwtService, log)
	getCurrentUC := userUsecases.NewGetCurrentUserUseCase(userRepo)
	updateProfileUC := userUsecases.NewUpdateProfileUseCase(userRepo, log)
	createStatusUC := statusUsecases.NewCreateStatusCheckUseCase(statusRepo, log)
	listStatusUC := statusUsecases.NewListStatusChecksUseCase(statusRepo)

	// Handlers and middleware
	authHandler := handlers.NewAuthHandler(
		initiateOAuthUC,
		handleOAuthUC,
		getCurrentUC,
		updateProfileUC,
		stateCarrier,
		log,
		cfg.Server.FrontendURL,
	)
	statusHandler := handlers.NewStatusHandler(createStatusUC, listStatusUC, log)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	router := NewRouter(cfg, log, authHandler, statusHandler, authMiddleware)
	router.SetupRoutes()

	return &Container{
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
		router: router,
	}, nil
}

// Router returns the configured HTTP router.
func (c *Container) Router() *Router {
	return c.router
}

// Shutdown releases resources owned by the container.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
