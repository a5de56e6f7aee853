package repository

import (
	"fmt"
	"sort"
	"sync"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/clock"
	model "auction-marketplace/internal/models"
)

// BidLedger defines the append-only bid storage for the auction system
type BidLedger interface {
	AppendBid(bid model.Bid) (model.Bid, error)
	GetBid(bidID string) (model.Bid, error)
	GetBidsByListing(listingID string) ([]model.Bid, error)
	GetWinningBid(listingID string) (model.Bid, error)
	GetCurrentBid(listingID string) (float64, error)
	GetNumBids(listingID string) (int, error)
	GetListingsByBidder(profileID string) ([]model.Listing, error)
}

// ListingStore defines auction listing storage
type ListingStore interface {
	CreateListing(listing model.Listing) error
	GetListing(listingID string) (model.Listing, error)
	UpdateListing(listing model.Listing) error
	DeleteListing(listingID string) error
	ListListings() []model.Listing
	GetListingsByOwner(ownerID string) []model.Listing
}

// ProfileStore defines marketplace profile storage
type ProfileStore interface {
	CreateProfile(profile model.Profile) error
	GetProfile(profileID string) (model.Profile, error)
	UpdateProfile(profile model.Profile) error
	ListProfiles() []model.Profile
}

// ReviewStore defines append-only review storage
type ReviewStore interface {
	RecordReview(review model.Review) error
	GetReviewsByProfile(profileID string) ([]model.Review, error)
}

// CommentStore defines append-only comment storage
type CommentStore interface {
	RecordComment(comment model.Comment) error
	GetCommentsByListing(listingID string) ([]model.Comment, error)
}

// MarketDB aggregates all storage interfaces for the marketplace
type MarketDB interface {
	BidLedger
	ListingStore
	ProfileStore
	ReviewStore
	CommentStore
}

// listingRecord pairs a listing with its bid log. Its mutex is the
// per-listing critical section: the read-highest / compare / append steps
// of bid placement run under it, so two racing bids for the same listing
// can never both be evaluated against a stale current bid. Listings are
// independent; bids on different listings never contend.
type listingRecord struct {
	mu      sync.Mutex
	listing model.Listing
	bids    []model.Bid
}

// currentBid returns max(starting bid, highest bid amount).
// Callers must hold rec.mu.
func (rec *listingRecord) currentBid() float64 {
	highest := rec.listing.StartingBid
	for _, b := range rec.bids {
		if b.Amount > highest {
			highest = b.Amount
		}
	}
	return highest
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	clk clock.Clock

	mu       sync.RWMutex
	listings map[string]*listingRecord
	profiles map[string]model.Profile
	reviews  map[string][]model.Review  // key: reviewedProfileID -> reviews, oldest first
	comments map[string][]model.Comment // key: listingID -> comments, oldest first

	bidMu          sync.RWMutex
	bidsByID       map[string]model.Bid
	bidderListings map[string][]string // key: bidderID -> listingIDs bid on
}

// NewMemoryRepo creates a new in-memory repository instance. A nil clock
// falls back to the system clock.
func NewMemoryRepo(clk clock.Clock) *MemoryRepo {
	if clk == nil {
		clk = clock.Real{}
	}
	return &MemoryRepo{
		clk:            clk,
		listings:       make(map[string]*listingRecord),
		profiles:       make(map[string]model.Profile),
		reviews:        make(map[string][]model.Review),
		comments:       make(map[string][]model.Comment),
		bidsByID:       make(map[string]model.Bid),
		bidderListings: make(map[string][]string),
	}
}

// AppendBid atomically validates and records a bid against a listing. The
// auction-active and amount checks happen inside the listing's critical
// section, and the bid timestamp is assigned there too, so accepted bids
// for a listing carry non-decreasing timestamps in insertion order.
func (r *MemoryRepo) AppendBid(bid model.Bid) (model.Bid, error) {
	r.mu.RLock()
	rec, ok := r.listings[bid.ListingID]
	r.mu.RUnlock()
	if !ok {
		return model.Bid{}, fmt.Errorf("append bid for listing %s: %w", bid.ListingID, auctionerrors.ErrListingNotFound)
	}

	rec.mu.Lock()
	now := r.clk.Now()
	if !clock.Active(rec.listing.EndTime, now) {
		rec.mu.Unlock()
		return model.Bid{}, fmt.Errorf("append bid for listing %s: %w", bid.ListingID, auctionerrors.ErrAuctionEnded)
	}
	highest := rec.currentBid()
	if bid.Amount <= highest {
		rec.mu.Unlock()
		return model.Bid{}, fmt.Errorf("append bid for listing %s: current bid is %.2f: %w", bid.ListingID, highest, auctionerrors.ErrBidTooLow)
	}
	bid.CreatedAt = now
	rec.bids = append(rec.bids, bid)
	rec.mu.Unlock()

	r.bidMu.Lock()
	r.bidsByID[bid.BidID] = bid
	tracked := false
	for _, id := range r.bidderListings[bid.BidderID] {
		if id == bid.ListingID {
			tracked = true
			break
		}
	}
	if !tracked {
		r.bidderListings[bid.BidderID] = append(r.bidderListings[bid.BidderID], bid.ListingID)
	}
	r.bidMu.Unlock()

	return bid, nil
}

// GetBid returns a single bid by its identifier
func (r *MemoryRepo) GetBid(bidID string) (model.Bid, error) {
	r.bidMu.RLock()
	defer r.bidMu.RUnlock()

	bid, ok := r.bidsByID[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	return bid, nil
}

// GetBidsByListing returns all bids for a listing in placement order. A
// listing with no bids yields an empty slice, not an error.
func (r *MemoryRepo) GetBidsByListing(listingID string) ([]model.Bid, error) {
	rec, err := r.record(listingID)
	if err != nil {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]model.Bid(nil), rec.bids...), nil
}

// GetWinningBid returns the highest bid for a listing
func (r *MemoryRepo) GetWinningBid(listingID string) (model.Bid, error) {
	rec, err := r.record(listingID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("get winning bid for listing %s: %w", listingID, err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if len(rec.bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for listing %s: %w", listingID, auctionerrors.ErrNoBids)
	}

	winning := rec.bids[0]
	for _, b := range rec.bids[1:] {
		if b.Amount > winning.Amount {
			winning = b
		}
	}
	return winning, nil
}

// GetCurrentBid returns the derived current bid for a listing: the starting
// bid when no bids exist, otherwise the highest bid amount.
func (r *MemoryRepo) GetCurrentBid(listingID string) (float64, error) {
	rec, err := r.record(listingID)
	if err != nil {
		return 0, fmt.Errorf("get current bid for listing %s: %w", listingID, err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.currentBid(), nil
}

// GetNumBids returns the number of bids recorded against a listing
func (r *MemoryRepo) GetNumBids(listingID string) (int, error) {
	rec, err := r.record(listingID)
	if err != nil {
		return 0, fmt.Errorf("get bid count for listing %s: %w", listingID, err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.bids), nil
}

// GetListingsByBidder returns all listings a profile has bid on
func (r *MemoryRepo) GetListingsByBidder(profileID string) ([]model.Listing, error) {
	r.bidMu.RLock()
	listingIDs := append([]string(nil), r.bidderListings[profileID]...)
	r.bidMu.RUnlock()

	if len(listingIDs) == 0 {
		return nil, fmt.Errorf("get listings for bidder %s: %w", profileID, auctionerrors.ErrBidderNoBids)
	}

	listings := make([]model.Listing, 0, len(listingIDs))
	for _, id := range listingIDs {
		if rec, err := r.record(id); err == nil {
			rec.mu.Lock()
			listings = append(listings, rec.listing)
			rec.mu.Unlock()
		}
	}
	return listings, nil
}

// CreateListing stores a new listing. The owner profile must exist.
func (r *MemoryRepo) CreateListing(listing model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[listing.OwnerID]; !ok {
		return fmt.Errorf("create listing %s: owner %s: %w", listing.ListingID, listing.OwnerID, auctionerrors.ErrProfileNotFound)
	}

	r.listings[listing.ListingID] = &listingRecord{listing: listing}
	return nil
}

// GetListing returns a listing by its identifier
func (r *MemoryRepo) GetListing(listingID string) (model.Listing, error) {
	rec, err := r.record(listingID)
	if err != nil {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.listing, nil
}

// UpdateListing replaces a listing's mutable fields. Listings freeze once
// any bid has been accepted, so the current-bid invariant cannot be
// loosened mid-auction.
func (r *MemoryRepo) UpdateListing(listing model.Listing) error {
	rec, err := r.record(listing.ListingID)
	if err != nil {
		return fmt.Errorf("update listing %s: %w", listing.ListingID, err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if len(rec.bids) > 0 {
		return fmt.Errorf("update listing %s: %w", listing.ListingID, auctionerrors.ErrListingHasBids)
	}

	// Identity, ownership and listing time are immutable
	listing.OwnerID = rec.listing.OwnerID
	listing.ListedAt = rec.listing.ListedAt
	rec.listing = listing
	return nil
}

// DeleteListing removes a listing. Rejected once bids exist.
func (r *MemoryRepo) DeleteListing(listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.listings[listingID]
	if !ok {
		return fmt.Errorf("delete listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}

	rec.mu.Lock()
	numBids := len(rec.bids)
	rec.mu.Unlock()

	if numBids > 0 {
		return fmt.Errorf("delete listing %s: %w", listingID, auctionerrors.ErrListingHasBids)
	}

	delete(r.listings, listingID)
	return nil
}

// ListListings returns all listings, newest first
func (r *MemoryRepo) ListListings() []model.Listing {
	r.mu.RLock()
	recs := make([]*listingRecord, 0, len(r.listings))
	for _, rec := range r.listings {
		recs = append(recs, rec)
	}
	r.mu.RUnlock()

	listings := make([]model.Listing, 0, len(recs))
	for _, rec := range recs {
		rec.mu.Lock()
		listings = append(listings, rec.listing)
		rec.mu.Unlock()
	}

	sort.Slice(listings, func(i, j int) bool {
		return listings[i].ListedAt.After(listings[j].ListedAt)
	})
	return listings
}

// GetListingsByOwner returns all listings created by a profile, newest first
func (r *MemoryRepo) GetListingsByOwner(ownerID string) []model.Listing {
	all := r.ListListings()
	owned := make([]model.Listing, 0)
	for _, l := range all {
		if l.OwnerID == ownerID {
			owned = append(owned, l)
		}
	}
	return owned
}

// CreateProfile stores a new profile
func (r *MemoryRepo) CreateProfile(profile model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.ProfileID]; ok {
		return fmt.Errorf("create profile %s: %w", profile.ProfileID, auctionerrors.ErrProfileExists)
	}

	r.profiles[profile.ProfileID] = profile
	return nil
}

// GetProfile returns a profile by its identifier
func (r *MemoryRepo) GetProfile(profileID string) (model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[profileID]
	if !ok {
		return model.Profile{}, fmt.Errorf("get profile %s: %w", profileID, auctionerrors.ErrProfileNotFound)
	}
	return profile, nil
}

// UpdateProfile replaces a profile's mutable fields, last writer wins
func (r *MemoryRepo) UpdateProfile(profile model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.profiles[profile.ProfileID]
	if !ok {
		return fmt.Errorf("update profile %s: %w", profile.ProfileID, auctionerrors.ErrProfileNotFound)
	}

	// Join time is server-assigned and immutable
	profile.JoinedAt = existing.JoinedAt
	r.profiles[profile.ProfileID] = profile
	return nil
}

// ListProfiles returns all profiles, newest first
func (r *MemoryRepo) ListProfiles() []model.Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]model.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		profiles = append(profiles, p)
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].JoinedAt.After(profiles[j].JoinedAt)
	})
	return profiles
}

// RecordReview appends a review against a profile. Both the reviewer and
// the reviewed profile must exist.
func (r *MemoryRepo) RecordReview(review model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[review.ReviewedID]; !ok {
		return fmt.Errorf("record review for profile %s: %w", review.ReviewedID, auctionerrors.ErrProfileNotFound)
	}
	if _, ok := r.profiles[review.ReviewerID]; !ok {
		return fmt.Errorf("record review by profile %s: %w", review.ReviewerID, auctionerrors.ErrProfileNotFound)
	}

	r.reviews[review.ReviewedID] = append(r.reviews[review.ReviewedID], review)
	return nil
}

// GetReviewsByProfile returns all reviews received by a profile, oldest
// first. A profile with no reviews yields an empty slice.
func (r *MemoryRepo) GetReviewsByProfile(profileID string) ([]model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.profiles[profileID]; !ok {
		return nil, fmt.Errorf("get reviews for profile %s: %w", profileID, auctionerrors.ErrProfileNotFound)
	}
	return append([]model.Review(nil), r.reviews[profileID]...), nil
}

// RecordComment appends a comment against a listing
func (r *MemoryRepo) RecordComment(comment model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[comment.ListingID]; !ok {
		return fmt.Errorf("record comment for listing %s: %w", comment.ListingID, auctionerrors.ErrListingNotFound)
	}

	r.comments[comment.ListingID] = append(r.comments[comment.ListingID], comment)
	return nil
}

// GetCommentsByListing returns all comments for a listing, oldest first
func (r *MemoryRepo) GetCommentsByListing(listingID string) ([]model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.listings[listingID]; !ok {
		return nil, fmt.Errorf("get comments for listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	return append([]model.Comment(nil), r.comments[listingID]...), nil
}

// record looks up the listing record for an id
func (r *MemoryRepo) record(listingID string) (*listingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.listings[listingID]
	if !ok {
		return nil, auctionerrors.ErrListingNotFound
	}
	return rec, nil
}

// AddListing inserts a listing without referential checks. This method is
// intended for tests and demo seeding only.
func (r *MemoryRepo) AddListing(listing model.Listing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[listing.ListingID] = &listingRecord{listing: listing}
}

// AddProfile inserts a profile without checks. This method is intended for
// tests and demo seeding only.
func (r *MemoryRepo) AddProfile(profile model.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.ProfileID] = profile
}
