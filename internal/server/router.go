package server

import (
	handler "auction-engine/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the auction engine
func SetupRouter(biddingService handler.BiddingServiceInterface, closeoutService handler.CloseoutServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(biddingService, closeoutService)

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/winning", auctionHandler.GetWinningBidHandler)
		auctions.POST("/:auction_id/dispute", auctionHandler.ResolveDisputeHandler)
	}

	closeouts := router.Group("/closeouts")
	{
		closeouts.POST("", auctionHandler.RunCloseoutHandler)
	}

	sellers := router.Group("/sellers")
	{
		sellers.GET("/:seller_id/income", auctionHandler.BidIncomeHandler)
	}

	return router
}
