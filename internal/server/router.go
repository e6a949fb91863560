package server

import (
	handler "agro-trade/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	crops := router.Group("/crops")
	{
		crops.GET("", auctionHandler.GetAllCropsHandler)
		crops.POST("", auctionHandler.CreateCropHandler)
		crops.POST("/close", auctionHandler.CloseAuctionHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	payments := router.Group("/payments")
	{
		payments.POST("", auctionHandler.RecordPaymentHandler)
	}

	return router
}
