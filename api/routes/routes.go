package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vesoapp/veso-backend/internal/config"
	"github.com/vesoapp/veso-backend/internal/handlers"
	"github.com/vesoapp/veso-backend/internal/middleware"
)

// HandlerDependencies carries the constructed handlers into the router
type HandlerDependencies struct {
	ResultHandler   *handlers.ResultHandler
	OCRHandler      *handlers.OCRHandler
	TicketHandler   *handlers.TicketHandler
	ScheduleHandler *handlers.ScheduleHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	api := router.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		results := api.Group("/results")
		{
			results.GET("", deps.ResultHandler.GetResults)
			results.GET("/prefetch", deps.ResultHandler.Prefetch)
		}

		ocr := api.Group("/ocr")
		{
			ocr.POST("", deps.OCRHandler.Recognize)
			ocr.GET("/engines", deps.OCRHandler.Engines)
		}

		api.GET("/schedule", deps.ScheduleHandler.GetSchedule)
		api.POST("/tickets/check", deps.TicketHandler.Check)
	}

	return router
}
