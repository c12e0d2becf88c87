package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"seosync/internal/api/handlers"
	"seosync/internal/api/middleware"
	"seosync/internal/config"
	"seosync/internal/logger"
	"seosync/internal/services/huggingface"
	"seosync/internal/services/shopify"
	"seosync/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Shared state and upstream clients
	templateStore := store.New()
	shopifyClient := shopify.NewClient(cfg.ShopifyStoreDomain, cfg.ShopifyAccessToken, logger)
	classifier := huggingface.NewClient(cfg.HuggingFaceAPIKey, logger)

	// Initialize handlers
	templateHandler := handlers.NewTemplateHandler(templateStore, logger)
	webhookHandler := handlers.NewWebhookHandler(shopifyClient, templateStore, logger)
	imageHandler := handlers.NewImageHandler(shopifyClient, logger)
	tagHandler := handlers.NewTagHandler(shopifyClient, classifier, templateStore, logger)

	// Routes
	router.POST("/update-product", templateHandler.Update)
	router.POST("/webhook/products/create", webhookHandler.ProductCreate)
	router.POST("/update-alt-text", imageHandler.UpdateAltText)
	router.POST("/generate-tags", tagHandler.Generate)
	router.POST("/apply-tags", tagHandler.Apply)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Operator UI at the root path
	router.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.Host, s.config.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// GetRouter returns the Gin router, mainly for tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
