package reviews

import (
	"fmt"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/clock"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

// Rating bounds for a review
const (
	MinRating = 1
	MaxRating = 5
)

// RatingSummary is the derived aggregate over a profile's received reviews.
// Average is nil when the profile has no reviews yet.
type RatingSummary struct {
	Average *float64 `json:"average_rating"`
	Count   int      `json:"review_count"`
}

// ReviewService defines the business logic for profile reviews
type ReviewService struct {
	store repository.ReviewStore
	clk   clock.Clock
}

// NewReviewService creates a new ReviewService instance
func NewReviewService(store repository.ReviewStore, clk clock.Clock) *ReviewService {
	if clk == nil {
		clk = clock.Real{}
	}
	return &ReviewService{
		store: store,
		clk:   clk,
	}
}

// AddReview validates and records a review on a profile
func (s *ReviewService) AddReview(reviewerID, reviewedID string, rating int, feedback string) (models.Review, error) {
	if reviewerID == "" || reviewedID == "" {
		return models.Review{}, fmt.Errorf("service: %w - missing reviewerID or reviewedID", auctionerrors.ErrInvalidReview)
	}
	if rating < MinRating || rating > MaxRating {
		return models.Review{}, fmt.Errorf("service: %w - got %d", auctionerrors.ErrRatingOutOfRange, rating)
	}

	review := models.Review{
		ReviewID:   utils.GenerateID(),
		ReviewerID: reviewerID,
		ReviewedID: reviewedID,
		Rating:     rating,
		Feedback:   feedback,
		CreatedAt:  s.clk.Now(),
	}

	if err := s.store.RecordReview(review); err != nil {
		return models.Review{}, fmt.Errorf("service: failed to record review on profile %s: %w", reviewedID, err)
	}

	return review, nil
}

// ReviewsForProfile returns all reviews received by a profile
func (s *ReviewService) ReviewsForProfile(profileID string) ([]models.Review, error) {
	if profileID == "" {
		return nil, fmt.Errorf("service: %w - empty profile ID", auctionerrors.ErrInvalidReview)
	}

	revs, err := s.store.GetReviewsByProfile(profileID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get reviews for profile %s: %w", profileID, err)
	}

	return revs, nil
}

// AverageRating computes the arithmetic mean of a profile's received
// ratings. A profile with zero reviews has no average rather than a zero
// one, so the division never runs on an empty set.
func (s *ReviewService) AverageRating(profileID string) (RatingSummary, error) {
	revs, err := s.ReviewsForProfile(profileID)
	if err != nil {
		return RatingSummary{}, err
	}

	summary := RatingSummary{Count: len(revs)}
	if len(revs) == 0 {
		return summary, nil
	}

	total := 0
	for _, r := range revs {
		total += r.Rating
	}
	avg := float64(total) / float64(len(revs))
	summary.Average = &avg

	return summary, nil
}
