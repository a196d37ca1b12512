package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumen/internal/infrastructure/config"
	"lumen/internal/interfaces/http/handlers"
	"lumen/internal/interfaces/http/middleware"
	"lumen/internal/shared/logger"
	"lumen/internal/shared/utils"
)

// Router holds the gin engine and the handlers it routes to. All API
// routes live under the /api prefix.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	log            logger.Interface
	authHandler    *handlers.AuthHandler
	statusHandler  *handlers.StatusHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	cfg *config.Config,
	log logger.Interface,
	authHandler *handlers.AuthHandler,
	statusHandler *handlers.StatusHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		engine:         gin.New(),
		cfg:            cfg,
		log:            log,
		authHandler:    authHandler,
		statusHandler:  statusHandler,
		authMiddleware: authMiddleware,
	}
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	api := r.engine.Group("/api")
	{
		api.GET("/", r.hello)

		auth := api.Group("/auth")
		{
			auth.GET("/login/google", r.authHandler.InitiateOAuth)
			auth.GET("/google", r.authHandler.HandleOAuthCallback)

			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
			auth.PUT("/profile", r.authMiddleware.RequireAuth(), r.authHandler.UpdateProfile)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
		}

		api.POST("/status", r.statusHandler.Create)
		api.GET("/status", r.statusHandler.List)
	}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) hello(c *gin.Context) {
	utils.MessageResponse(c, http.StatusOK, "Hello World")
}
