package helpers

import "time"

// Request/Response DTOs
type PlaceBidRequest struct {
	ListingID string  `json:"listing_id" binding:"required"`
	BidderID  string  `json:"bidder_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	ListingID string  `json:"listing_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type CreateListingRequest struct {
	OwnerID     string    `json:"owner_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	ImageURL    string    `json:"listing_image"`
	StartingBid float64   `json:"starting_bid"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

type UpdateListingRequest struct {
	ProfileID   string    `json:"profile_id" binding:"required"` // acting profile, must own the listing
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	ImageURL    string    `json:"listing_image"`
	StartingBid float64   `json:"starting_bid"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

type CreateProfileRequest struct {
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ImageURL  string `json:"profile_image"`
	Bio       string `json:"bio_text"`
}

type CreateCommentRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	ProfileID string `json:"profile_id" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

type CreateReviewRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required"`
	ReviewedID string `json:"reviewed_profile_id" binding:"required"`
	Rating     int    `json:"numerical_rating" binding:"required"`
	Feedback   string `json:"feedback"`
}
