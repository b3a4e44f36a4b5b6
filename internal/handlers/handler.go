package handlers

import (
	"net/http"
	"time"

	"github.com/abhishek-8081/Brainly-Backend/internal/config"
	"github.com/abhishek-8081/Brainly-Backend/internal/logger"
	"github.com/abhishek-8081/Brainly-Backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cfg      *config.Config
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cfg *config.Config) *Handler {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Handler{services: services, log: log, cfg: cfg}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(h.corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	{
		api.GET("/health", h.health)
		api.POST("/signup", h.signUp)
		api.POST("/signin", h.signIn)

		// Public share access; the hash is the only capability needed.
		api.GET("/brain/:shareLink", h.getSharedBrain)

		protected := api.Group("", h.userIDMiddleware)
		{
			protected.POST("/content", h.createContent)
			protected.GET("/content", h.listContent)
			protected.DELETE("/content", h.deleteContent)
			protected.POST("/brain/share", h.shareBrain)
		}
	}

	return router
}

// corsConfig mirrors the browser contract of the frontend: explicit
// origins with credentials when configured, otherwise open.
func (h *Handler) corsConfig() cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(h.cfg.CORSOrigins) > 0 {
		c.AllowOrigins = h.cfg.CORSOrigins
	} else {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	}
	return c
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"msg": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.cfg.Env,
	})
}
