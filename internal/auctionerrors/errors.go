package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrNoBids          = errors.New("no bids found for listing")
	ErrBidderNoBids    = errors.New("profile has not placed any bids")
)

// Business logic errors
var (
	ErrInvalidBid       = errors.New("invalid bid")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrAuctionEnded     = errors.New("auction has ended")
	ErrInvalidListing   = errors.New("invalid listing")
	ErrListingHasBids   = errors.New("listing already has bids")
	ErrNotOwner         = errors.New("profile does not own this listing")
	ErrInvalidProfile   = errors.New("invalid profile")
	ErrInvalidComment   = errors.New("invalid comment")
	ErrInvalidReview    = errors.New("invalid review")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrProfileExists    = errors.New("profile already exists")
)
