package routes

import (
	"context"
	"log"

	"ucraft_estimates/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.LoadConfig()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	log.Printf("[server] listening port=%s storage=%s", cfg.Port, cfg.StorageDriver)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg *config.Config) error {
	h, err := buildHandlers(ctx, cfg)
	if err != nil {
		return err
	}
	registerRoutes(router.Group("/v1"), h)
	return nil
}

func registerRoutes(v1 *gin.RouterGroup, h *handlerSet) {
	addPingRoutes(v1)
	addEstimateRoutes(v1, h.estimates, h.documents)
	addDocumentRoutes(v1, h.documents)
	addCatalogRoutes(v1, h.catalog)
	addSupplierRoutes(v1, h.estimates)
	addPaymentRoutes(v1, h.payments)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
