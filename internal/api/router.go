package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spatialrsp/rsp-backend-go/internal/config"
	"github.com/spatialrsp/rsp-backend-go/internal/database"
	"github.com/spatialrsp/rsp-backend-go/internal/handler"
	"github.com/spatialrsp/rsp-backend-go/internal/middleware"
	"github.com/spatialrsp/rsp-backend-go/internal/repository"
	"github.com/spatialrsp/rsp-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers onto the Gin engine
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "RSP Backend API is running",
		})
	})

	db := database.GetDB()
	sampleRepo := repository.NewSampleRepository(db)
	scanRepo := repository.NewScanRepository(db)

	sampleService := service.NewSampleService(sampleRepo, cfg)
	scanService := service.NewScanService(scanRepo, sampleRepo, cfg)
	compareService := service.NewCompareService(scanService)

	sampleHandler := handler.NewSampleHandler(sampleService)
	scanHandler := handler.NewScanHandler(scanService)
	compareHandler := handler.NewCompareHandler(compareService)

	auth := middleware.Auth(cfg.JWTSecret)

	api := r.Group("/api/v1")
	{
		samples := api.Group("/samples")
		{
			samples.GET("", sampleHandler.List)
			samples.GET("/:id", sampleHandler.Get)
			samples.GET("/:id/summary", sampleHandler.Summary)
			samples.POST("", auth, sampleHandler.Create)
			samples.POST("/project", auth, sampleHandler.Project)
			samples.DELETE("/:id", auth, sampleHandler.Delete)
		}

		scans := api.Group("/scans")
		{
			scans.GET("", scanHandler.List)
			scans.GET("/:id", scanHandler.Get)
			scans.GET("/:id/result", scanHandler.Result)
			scans.POST("", auth, scanHandler.Create)
			scans.POST("/run", scanHandler.Run)
		}

		api.POST("/compare", compareHandler.Compare)
	}

	return r
}
