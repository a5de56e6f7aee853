package comments

import (
	"fmt"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/clock"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

// CommentService defines the business logic for listing comments
type CommentService struct {
	store repository.CommentStore
	clk   clock.Clock
}

// NewCommentService creates a new CommentService instance
func NewCommentService(store repository.CommentStore, clk clock.Clock) *CommentService {
	if clk == nil {
		clk = clock.Real{}
	}
	return &CommentService{
		store: store,
		clk:   clk,
	}
}

// AddComment validates and records a comment under a listing
func (s *CommentService) AddComment(listingID, profileID, text string) (models.Comment, error) {
	if listingID == "" || profileID == "" {
		return models.Comment{}, fmt.Errorf("service: %w - missing listingID or profileID", auctionerrors.ErrInvalidComment)
	}
	if text == "" {
		return models.Comment{}, fmt.Errorf("service: %w - empty comment text", auctionerrors.ErrInvalidComment)
	}

	comment := models.Comment{
		CommentID: utils.GenerateID(),
		ListingID: listingID,
		ProfileID: profileID,
		Text:      text,
		CreatedAt: s.clk.Now(),
	}

	if err := s.store.RecordComment(comment); err != nil {
		return models.Comment{}, fmt.Errorf("service: failed to record comment on listing %s: %w", listingID, err)
	}

	return comment, nil
}

// CommentsForListing returns all comments under a listing, oldest first
func (s *CommentService) CommentsForListing(listingID string) ([]models.Comment, error) {
	if listingID == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidComment)
	}

	cs, err := s.store.GetCommentsByListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get comments for listing %s: %w", listingID, err)
	}

	return cs, nil
}
