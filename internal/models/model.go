package models

import "time"

// Profile represents a marketplace participant (buyer and/or seller)
type Profile struct {
	ProfileID string    `json:"profile_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	ImageURL  string    `json:"profile_image"`
	Bio       string    `json:"bio_text"`
	JoinedAt  time.Time `json:"join_date"`
}

// Listing represents an item up for auction
type Listing struct {
	ListingID   string    `json:"listing_id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"listing_image"`
	StartingBid float64   `json:"starting_bid"`
	ListedAt    time.Time `json:"listed_at"`
	EndTime     time.Time `json:"end_time"`
}

// Bid represents a profile's bid on a listing. Bids are append-only:
// once accepted they are never mutated or removed.
type Bid struct {
	BidID     string    `json:"bid_id"`
	ListingID string    `json:"listing_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment represents a comment left under a listing's auction page
type Comment struct {
	CommentID string    `json:"comment_id"`
	ListingID string    `json:"listing_id"`
	ProfileID string    `json:"profile_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Review represents a rating review left on a seller's profile
type Review struct {
	ReviewID   string    `json:"review_id"`
	ReviewerID string    `json:"reviewer_id"`
	ReviewedID string    `json:"reviewed_profile_id"`
	Rating     int       `json:"numerical_rating"`
	Feedback   string    `json:"feedback"`
	CreatedAt  time.Time `json:"created_at"`
}
