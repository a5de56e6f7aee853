package handler

import (
	"fmt"
	"net/http"
	"time"

	listings "auction-marketplace/internal/listingService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type ListingServiceInterface interface {
	CreateListing(ownerID string, in listings.ListingInput) (model.Listing, error)
	GetListing(listingID string) (listings.Detail, error)
	UpdateListing(listingID, actingProfileID string, in listings.ListingInput) (model.Listing, error)
	DeleteListing(listingID, actingProfileID string) error
	ListListings() []listings.Detail
	ActiveListings() []listings.Detail
	EndingSoon(window time.Duration) []listings.Detail
	ListingsByOwner(ownerID string) ([]listings.Detail, error)
}

type ListingHandler struct {
	service ListingServiceInterface

	// window applied by the ending_within filter when the client passes
	// the flag without a duration
	endingSoonWindow time.Duration
}

func NewListingHandler(service ListingServiceInterface, endingSoonWindow time.Duration) *ListingHandler {
	return &ListingHandler{service: service, endingSoonWindow: endingSoonWindow}
}

// CreateListingHandler handles POST /listings
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	listing, err := h.service.CreateListing(req.OwnerID, listings.ListingInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		StartingBid: req.StartingBid,
		EndTime:     req.EndTime,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateListingHandler: failed to create listing", map[string]any{
			"owner_id": req.OwnerID,
			"title":    req.Title,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, listing, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": listing.ListingID,
		"owner_id":   listing.OwnerID,
		"end_time":   listing.EndTime,
	})
}

// GetListingHandler handles GET /listings/:listing_id
func (h *ListingHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	detail, err := h.service.GetListing(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetListingHandler: error retrieving listing", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, detail, "listing retrieved successfully")
}

// ListListingsHandler handles GET /listings with optional filters:
// ?active=true for running auctions only, ?ending_within=<duration> for
// auctions closing inside the window.
func (h *ListingHandler) ListListingsHandler(c *gin.Context) {
	var result []listings.Detail

	switch {
	case c.Query("ending_within") != "":
		window := h.endingSoonWindow
		if raw := c.Query("ending_within"); raw != "true" {
			parsed, err := time.ParseDuration(raw)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid ending_within duration: %w", err), "invalid ending_within duration")
				return
			}
			window = parsed
		}
		result = h.service.EndingSoon(window)
	case c.Query("active") == "true":
		result = h.service.ActiveListings()
	default:
		result = h.service.ListListings()
	}

	utils.JSONResponse(c, http.StatusOK, result, "listings retrieved successfully")
	helpers.LogSuccess("ListListingsHandler", "listings retrieved successfully", map[string]any{
		"count": len(result),
	})
}

// UpdateListingHandler handles PUT /listings/:listing_id
func (h *ListingHandler) UpdateListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	var req helpers.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateListingHandler", err)
		return
	}

	listing, err := h.service.UpdateListing(listingID, req.ProfileID, listings.ListingInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		StartingBid: req.StartingBid,
		EndTime:     req.EndTime,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateListingHandler: failed to update listing", map[string]any{
			"listing_id": listingID,
			"profile_id": req.ProfileID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listing, "listing updated successfully")
	helpers.LogSuccess("UpdateListingHandler", "listing updated successfully", map[string]any{
		"listing_id": listing.ListingID,
		"profile_id": req.ProfileID,
	})
}

// DeleteListingHandler handles DELETE /listings/:listing_id?profile_id=...
func (h *ListingHandler) DeleteListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	profileID := c.Query("profile_id")

	if err := h.service.DeleteListing(listingID, profileID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteListingHandler: failed to delete listing", map[string]any{
			"listing_id": listingID,
			"profile_id": profileID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "listing deleted successfully")
	helpers.LogSuccess("DeleteListingHandler", "listing deleted successfully", map[string]any{
		"listing_id": listingID,
		"profile_id": profileID,
	})
}
