package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/clock"
	comments "auction-marketplace/internal/commentService"
	"auction-marketplace/internal/config"
	listings "auction-marketplace/internal/listingService"
	model "auction-marketplace/internal/models"
	profiles "auction-marketplace/internal/profileService"
	"auction-marketplace/internal/repository"
	reviews "auction-marketplace/internal/reviewService"
	"auction-marketplace/internal/server"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.MustLoad()

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	clk := clock.Real{}
	repo := repository.NewMemoryRepo(clk)

	if cfg.Auction.SeedDemoData {
		seedDemoData(repo, clk)
	}

	svcs := server.Services{
		Listings: listings.NewListingService(repo, repo, clk),
		Bidding:  bidding.NewBiddingService(repo),
		Profiles: profiles.NewProfileService(repo, clk),
		Reviews:  reviews.NewReviewService(repo, clk),
		Comments: comments.NewCommentService(repo, clk),
	}

	router := server.SetupRouter(svcs, cfg.Auction)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		utils.Info("Starting auction marketplace server", map[string]any{
			"addr":        srv.Addr,
			"environment": cfg.App.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Info("Shutting down server", map[string]any{"timeout": cfg.Server.ShutdownTimeout.String()})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Error("Forced server shutdown", map[string]any{"error": err.Error()})
	}
}

// seedDemoData populates the in-memory repo with sample profiles and listings
func seedDemoData(repo *repository.MemoryRepo, clk clock.Clock) {
	now := clk.Now()

	demoProfiles := []model.Profile{
		{ProfileID: "profile1", Username: "vintage_valerie", FirstName: "Valerie", JoinedAt: now},
		{ProfileID: "profile2", Username: "gadget_gus", FirstName: "Gus", JoinedAt: now},
	}
	for _, p := range demoProfiles {
		repo.AddProfile(p)
	}

	demoListings := []model.Listing{
		{ListingID: "listing1", OwnerID: "profile1", Title: "Antique pocket watch", StartingBid: 100, ListedAt: now, EndTime: now.Add(48 * time.Hour)},
		{ListingID: "listing2", OwnerID: "profile1", Title: "Mid-century lamp", StartingBid: 200, ListedAt: now, EndTime: now.Add(12 * time.Hour)},
		{ListingID: "listing3", OwnerID: "profile2", Title: "Mechanical keyboard", StartingBid: 150, ListedAt: now, EndTime: now.Add(72 * time.Hour)},
	}
	for _, l := range demoListings {
		repo.AddListing(l)
	}
}
