package bidding

import (
	"fmt"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	ledger repository.BidLedger
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(ledger repository.BidLedger) *BiddingService {
	return &BiddingService{
		ledger: ledger,
	}
}

// PlaceBid validates and records a profile's bid on a listing. The ledger
// performs the auction-active and strictly-greater checks atomically per
// listing, so either the bid is recorded and the derived current bid moves
// up, or nothing changes at all.
func (s *BiddingService) PlaceBid(listingID, bidderID string, amount float64) (models.Bid, error) {
	if listingID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing listingID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ListingID: listingID,
		BidderID:  bidderID,
		Amount:    amount,
		// CreatedAt is assigned by the ledger inside the listing's
		// critical section
	}

	recorded, err := s.ledger.AppendBid(bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on listing %s by profile %s: %w", listingID, bidderID, err)
	}

	return recorded, nil
}

// GetBid returns a single bid by its identifier
func (s *BiddingService) GetBid(bidID string) (models.Bid, error) {
	if bidID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty bid ID", auctionerrors.ErrInvalidBid)
	}

	bid, err := s.ledger.GetBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}

	return bid, nil
}

// GetBidsForListing returns all bids for a listing in placement order
func (s *BiddingService) GetBidsForListing(listingID string) ([]models.Bid, error) {
	if listingID == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.ledger.GetBidsByListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for listing %s: %w", listingID, err)
	}

	return bids, nil
}

// GetWinningBid returns the highest bid for a listing
func (s *BiddingService) GetWinningBid(listingID string) (models.Bid, error) {
	if listingID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidBid)
	}

	winningBid, err := s.ledger.GetWinningBid(listingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for listing %s: %w", listingID, err)
	}

	return winningBid, nil
}

// GetCurrentBid returns the derived current bid for a listing: the starting
// bid until the first bid lands, then the highest accepted amount.
func (s *BiddingService) GetCurrentBid(listingID string) (float64, error) {
	if listingID == "" {
		return 0, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidBid)
	}

	current, err := s.ledger.GetCurrentBid(listingID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get current bid for listing %s: %w", listingID, err)
	}

	return current, nil
}

// GetListingsByBidder returns all listings a profile has placed bids on
func (s *BiddingService) GetListingsByBidder(profileID string) ([]models.Listing, error) {
	if profileID == "" {
		return nil, fmt.Errorf("service: %w - empty profile ID", auctionerrors.ErrInvalidBid)
	}

	listings, err := s.ledger.GetListingsByBidder(profileID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get listings for bidder %s: %w", profileID, err)
	}

	return listings, nil
}
