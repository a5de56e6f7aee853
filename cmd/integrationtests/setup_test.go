package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
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

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing and seeds it with the given profiles and listings.
func SetupTestRouter(seedProfiles []model.Profile, seedListings []model.Listing) *gin.Engine {
	gin.SetMode(gin.TestMode)

	clk := clock.Real{}
	repo := repository.NewMemoryRepo(clk)

	for _, p := range seedProfiles {
		repo.AddProfile(p)
	}
	for _, l := range seedListings {
		repo.AddListing(l)
	}

	svcs := server.Services{
		Listings: listings.NewListingService(repo, repo, clk),
		Bidding:  bidding.NewBiddingService(repo),
		Profiles: profiles.NewProfileService(repo, clk),
		Reviews:  reviews.NewReviewService(repo, clk),
		Comments: comments.NewCommentService(repo, clk),
	}

	return server.SetupRouter(svcs, config.AuctionConfig{EndingSoonWindow: 24 * time.Hour})
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
		reqBody = nil
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// seedProfiles returns the two profiles most tests need
func seedProfiles() []model.Profile {
	return []model.Profile{
		{ProfileID: "seller1", Username: "seller1"},
		{ProfileID: "bidder1", Username: "bidder1"},
		{ProfileID: "bidder2", Username: "bidder2"},
	}
}

// openListing builds a listing ending in the future
func openListing(id, ownerID string, startingBid float64, endsIn time.Duration) model.Listing {
	return model.Listing{
		ListingID:   id,
		OwnerID:     ownerID,
		Title:       "Listing " + id,
		StartingBid: startingBid,
		ListedAt:    time.Now().UTC(),
		EndTime:     time.Now().UTC().Add(endsIn),
	}
}
