package handler

import (
	"fmt"
	"net/http"

	model "auction-marketplace/internal/models"
	reviews "auction-marketplace/internal/reviewService"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type ReviewServiceInterface interface {
	AddReview(reviewerID, reviewedID string, rating int, feedback string) (model.Review, error)
	ReviewsForProfile(profileID string) ([]model.Review, error)
	AverageRating(profileID string) (reviews.RatingSummary, error)
}

type ReviewHandler struct {
	service ReviewServiceInterface
}

func NewReviewHandler(service ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// CreateReviewHandler handles POST /reviews
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	var req helpers.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateReviewHandler", err)
		return
	}

	review, err := h.service.AddReview(req.ReviewerID, req.ReviewedID, req.Rating, req.Feedback)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateReviewHandler: failed to record review", map[string]any{
			"reviewer_id":         req.ReviewerID,
			"reviewed_profile_id": req.ReviewedID,
			"error":               err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, review, "review recorded successfully")
	helpers.LogSuccess("CreateReviewHandler", "review recorded successfully", map[string]any{
		"review_id":           review.ReviewID,
		"reviewed_profile_id": review.ReviewedID,
		"numerical_rating":    review.Rating,
	})
}
