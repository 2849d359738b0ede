package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-report/api/handlers"
	"daily-report/api/middleware"
	"daily-report/services"
	"daily-report/store"
)

func New(st *store.DayStore, reports *services.ReportService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/users/:id/entries", handlers.TodayEntriesHandler(st))
		api.POST("/users/:id/report", handlers.GenerateReportHandler(reports))
		api.GET("/users/:id/report/document", handlers.ReportDocumentHandler(reports))
	}

	return r
}
