package main

import (
	"time"

	_ "invoiceflow/api/swagger" // swagger docs
	"invoiceflow/internal/config"
	"invoiceflow/internal/handler"
	"invoiceflow/internal/kvstore"
	"invoiceflow/internal/metrics"
	"invoiceflow/internal/middleware"
	"invoiceflow/internal/repository"
	"invoiceflow/internal/service"
	"invoiceflow/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// newRouter assembles the dependency graph (Repository -> Service -> Handler)
// over store and returns the gin engine.
func newRouter(cfg *config.Config, store kvstore.Store, hub *websocket.Hub) *gin.Engine {
	invoiceRepo := repository.NewInvoiceRepository(store)
	auditRepo := repository.NewAuditRepository(store)

	var publisher service.Publisher
	if hub != nil {
		publisher = hub
	}
	invoiceService := service.NewInvoiceService(invoiceRepo, auditRepo, publisher, cfg.StrictTransitions)
	auditService := service.NewAuditService(auditRepo)
	statisticsService := service.NewStatisticsService(invoiceRepo)

	systemHandler := handler.NewSystemHandler(hub)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	auditHandler := handler.NewAuditHandler(auditService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.Caller(), middleware.RequestLogger())

	// CORS configuration
	corsConfig := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization", "X-Client-Info", "Apikey"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          600 * time.Second,
	}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group(cfg.ServicePrefix)
	systemHandler.RegisterRoutes(api)
	invoiceHandler.RegisterRoutes(api)
	auditHandler.RegisterRoutes(api)
	statisticsHandler.RegisterRoutes(api)

	return router
}
