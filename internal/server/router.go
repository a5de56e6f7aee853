package server

import (
	bidding "auction-marketplace/internal/biddingService"
	comments "auction-marketplace/internal/commentService"
	"auction-marketplace/internal/config"
	listings "auction-marketplace/internal/listingService"
	profiles "auction-marketplace/internal/profileService"
	reviews "auction-marketplace/internal/reviewService"
	handler "auction-marketplace/services/marketplace/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles the business services the router exposes
type Services struct {
	Listings *listings.ListingService
	Bidding  *bidding.BiddingService
	Profiles *profiles.ProfileService
	Reviews  *reviews.ReviewService
	Comments *comments.CommentService
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svcs Services, auctionCfg config.AuctionConfig) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // tag every request with an id
	router.Use(RequestLoggerMiddleware) // custom request logging

	listingHandler := handler.NewListingHandler(svcs.Listings, auctionCfg.EndingSoonWindow)
	biddingHandler := handler.NewBiddingHandler(svcs.Bidding)
	profileHandler := handler.NewProfileHandler(svcs.Profiles, svcs.Listings, svcs.Reviews)
	reviewHandler := handler.NewReviewHandler(svcs.Reviews)
	commentHandler := handler.NewCommentHandler(svcs.Comments)

	listingGroup := router.Group("/listings")
	{
		listingGroup.POST("", listingHandler.CreateListingHandler)
		listingGroup.GET("", listingHandler.ListListingsHandler)
		listingGroup.GET("/:listing_id", listingHandler.GetListingHandler)
		listingGroup.PUT("/:listing_id", listingHandler.UpdateListingHandler)
		listingGroup.DELETE("/:listing_id", listingHandler.DeleteListingHandler)
		listingGroup.GET("/:listing_id/bids", biddingHandler.GetBidsByListingHandler)
		listingGroup.GET("/:listing_id/winning", biddingHandler.GetWinningBidHandler)
		listingGroup.GET("/:listing_id/comments", commentHandler.GetCommentsByListingHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
		bids.GET("/:bid_id", biddingHandler.GetBidHandler)
	}

	bidders := router.Group("/bidders")
	{
		bidders.GET("/:profile_id/listings", biddingHandler.GetListingsByBidderHandler)
	}

	profileGroup := router.Group("/profiles")
	{
		profileGroup.POST("", profileHandler.CreateProfileHandler)
		profileGroup.GET("", profileHandler.ListProfilesHandler)
		profileGroup.GET("/:profile_id", profileHandler.GetProfileHandler)
		profileGroup.PUT("/:profile_id", profileHandler.UpdateProfileHandler)
		profileGroup.GET("/:profile_id/listings", profileHandler.GetProfileListingsHandler)
		profileGroup.GET("/:profile_id/reviews", profileHandler.GetProfileReviewsHandler)
		profileGroup.GET("/:profile_id/rating", profileHandler.GetProfileRatingHandler)
	}

	router.POST("/comments", commentHandler.CreateCommentHandler)
	router.POST("/reviews", reviewHandler.CreateReviewHandler)

	return router
}
