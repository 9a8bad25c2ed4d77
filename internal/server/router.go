package server

import (
	"vehicle-auction/internal/contract"
	handler "vehicle-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(registry *contract.Registry) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // tag each request with an ID
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(registry)

	router.POST("/invoke", auctionHandler.InvokeHandler)

	records := router.Group("/records")
	{
		records.GET("/:key", auctionHandler.QueryRecordHandler)
	}

	return router
}
