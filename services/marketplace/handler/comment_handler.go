package handler

import (
	"fmt"
	"net/http"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type CommentServiceInterface interface {
	AddComment(listingID, profileID, text string) (model.Comment, error)
	CommentsForListing(listingID string) ([]model.Comment, error)
}

type CommentHandler struct {
	service CommentServiceInterface
}

func NewCommentHandler(service CommentServiceInterface) *CommentHandler {
	return &CommentHandler{service: service}
}

// CreateCommentHandler handles POST /comments
func (h *CommentHandler) CreateCommentHandler(c *gin.Context) {
	var req helpers.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCommentHandler", err)
		return
	}

	comment, err := h.service.AddComment(req.ListingID, req.ProfileID, req.Text)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateCommentHandler: failed to record comment", map[string]any{
			"listing_id": req.ListingID,
			"profile_id": req.ProfileID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, comment, "comment recorded successfully")
	helpers.LogSuccess("CreateCommentHandler", "comment recorded successfully", map[string]any{
		"comment_id": comment.CommentID,
		"listing_id": comment.ListingID,
	})
}

// GetCommentsByListingHandler handles GET /listings/:listing_id/comments
func (h *CommentHandler) GetCommentsByListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	result, err := h.service.CommentsForListing(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetCommentsByListingHandler: error retrieving comments", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	if result == nil {
		result = []model.Comment{}
	}

	utils.JSONResponse(c, http.StatusOK, result, "comments retrieved successfully")
}
