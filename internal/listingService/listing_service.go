package listings

import (
	"fmt"
	"sort"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/clock"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

// ListingInput carries the caller-editable fields of a listing
type ListingInput struct {
	Title       string
	Description string
	ImageURL    string
	StartingBid float64
	EndTime     time.Time
}

// Detail is a listing together with its derived auction state
type Detail struct {
	models.Listing
	NumBids    int     `json:"num_bids"`
	CurrentBid float64 `json:"current_bid"`
	TimeLeft   string  `json:"time_left"`
	Active     bool    `json:"active"`
}

// ListingService defines the business logic for auction listings
type ListingService struct {
	store  repository.ListingStore
	ledger repository.BidLedger
	clk    clock.Clock
}

// NewListingService creates a new ListingService instance
func NewListingService(store repository.ListingStore, ledger repository.BidLedger, clk clock.Clock) *ListingService {
	if clk == nil {
		clk = clock.Real{}
	}
	return &ListingService{
		store:  store,
		ledger: ledger,
		clk:    clk,
	}
}

// CreateListing validates and stores a new auction listing
func (s *ListingService) CreateListing(ownerID string, in ListingInput) (models.Listing, error) {
	if ownerID == "" {
		return models.Listing{}, fmt.Errorf("service: %w - missing owner ID", auctionerrors.ErrInvalidListing)
	}

	now := s.clk.Now()
	if err := validateInput(in, now); err != nil {
		return models.Listing{}, err
	}

	listing := models.Listing{
		ListingID:   utils.GenerateID(),
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		StartingBid: in.StartingBid,
		ListedAt:    now,
		EndTime:     in.EndTime,
	}

	if err := s.store.CreateListing(listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to create listing for owner %s: %w", ownerID, err)
	}

	return listing, nil
}

// validateInput checks the creation/update rules for listing fields
func validateInput(in ListingInput, now time.Time) error {
	if in.StartingBid < 0 {
		return fmt.Errorf("service: %w - negative starting bid", auctionerrors.ErrInvalidListing)
	}
	if !in.EndTime.After(now) {
		return fmt.Errorf("service: %w - end time must be in the future", auctionerrors.ErrInvalidListing)
	}
	return nil
}

// GetListing returns a listing with its derived auction state
func (s *ListingService) GetListing(listingID string) (Detail, error) {
	if listingID == "" {
		return Detail{}, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidListing)
	}

	listing, err := s.store.GetListing(listingID)
	if err != nil {
		return Detail{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}

	return s.detail(listing), nil
}

// UpdateListing replaces a listing's editable fields. Only the owner may
// update, and the store rejects updates once any bid exists.
func (s *ListingService) UpdateListing(listingID, actingProfileID string, in ListingInput) (models.Listing, error) {
	if err := s.requireOwner(listingID, actingProfileID); err != nil {
		return models.Listing{}, err
	}
	if err := validateInput(in, s.clk.Now()); err != nil {
		return models.Listing{}, err
	}

	updated := models.Listing{
		ListingID:   listingID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		StartingBid: in.StartingBid,
		EndTime:     in.EndTime,
	}

	if err := s.store.UpdateListing(updated); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to update listing %s: %w", listingID, err)
	}

	listing, err := s.store.GetListing(listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to reload listing %s: %w", listingID, err)
	}
	return listing, nil
}

// DeleteListing removes a listing. Only the owner may delete, and the
// store rejects deletion once any bid exists.
func (s *ListingService) DeleteListing(listingID, actingProfileID string) error {
	if err := s.requireOwner(listingID, actingProfileID); err != nil {
		return err
	}

	if err := s.store.DeleteListing(listingID); err != nil {
		return fmt.Errorf("service: failed to delete listing %s: %w", listingID, err)
	}
	return nil
}

// IsOwner reports whether a profile owns a listing
func (s *ListingService) IsOwner(listingID, profileID string) (bool, error) {
	listing, err := s.store.GetListing(listingID)
	if err != nil {
		return false, fmt.Errorf("service: failed to check owner of listing %s: %w", listingID, err)
	}
	return listing.OwnerID == profileID, nil
}

// requireOwner gates mutation on listing ownership
func (s *ListingService) requireOwner(listingID, profileID string) error {
	if listingID == "" || profileID == "" {
		return fmt.Errorf("service: %w - missing listingID or profileID", auctionerrors.ErrInvalidListing)
	}
	owner, err := s.IsOwner(listingID, profileID)
	if err != nil {
		return err
	}
	if !owner {
		return fmt.Errorf("service: profile %s on listing %s: %w", profileID, listingID, auctionerrors.ErrNotOwner)
	}
	return nil
}

// ListListings returns all listings with derived state, newest first
func (s *ListingService) ListListings() []Detail {
	return s.details(s.store.ListListings())
}

// ActiveListings returns listings whose auctions have not ended, newest first
func (s *ListingService) ActiveListings() []Detail {
	now := s.clk.Now()
	active := make([]models.Listing, 0)
	for _, l := range s.store.ListListings() {
		if clock.Active(l.EndTime, now) {
			active = append(active, l)
		}
	}
	return s.details(active)
}

// EndingSoon returns active listings ending within the given window,
// soonest first
func (s *ListingService) EndingSoon(window time.Duration) []Detail {
	now := s.clk.Now()
	cutoff := now.Add(window)
	soon := make([]models.Listing, 0)
	for _, l := range s.store.ListListings() {
		if clock.Active(l.EndTime, now) && !l.EndTime.After(cutoff) {
			soon = append(soon, l)
		}
	}
	sort.Slice(soon, func(i, j int) bool {
		return soon[i].EndTime.Before(soon[j].EndTime)
	})
	return s.details(soon)
}

// ListingsByOwner returns a profile's listings with derived state, newest first
func (s *ListingService) ListingsByOwner(ownerID string) ([]Detail, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("service: %w - empty owner ID", auctionerrors.ErrInvalidListing)
	}
	return s.details(s.store.GetListingsByOwner(ownerID)), nil
}

// detail decorates a listing with its derived auction state
func (s *ListingService) detail(listing models.Listing) Detail {
	now := s.clk.Now()
	d := Detail{
		Listing:    listing,
		CurrentBid: listing.StartingBid,
		TimeLeft:   clock.FormatTimeLeft(listing.EndTime, now),
		Active:     clock.Active(listing.EndTime, now),
	}
	if n, err := s.ledger.GetNumBids(listing.ListingID); err == nil {
		d.NumBids = n
	}
	if current, err := s.ledger.GetCurrentBid(listing.ListingID); err == nil {
		d.CurrentBid = current
	}
	return d
}

func (s *ListingService) details(listings []models.Listing) []Detail {
	out := make([]Detail, 0, len(listings))
	for _, l := range listings {
		out = append(out, s.detail(l))
	}
	return out
}
