package handler

import (
	"fmt"
	"net/http"

	model "auction-marketplace/internal/models"
	profiles "auction-marketplace/internal/profileService"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type ProfileServiceInterface interface {
	CreateProfile(in profiles.ProfileInput) (model.Profile, error)
	GetProfile(profileID string) (model.Profile, error)
	UpdateProfile(profileID string, in profiles.ProfileInput) (model.Profile, error)
	ListProfiles() []model.Profile
}

// ProfileHandler serves profile CRUD plus the profile-scoped views of
// listings, reviews and the derived rating.
type ProfileHandler struct {
	service  ProfileServiceInterface
	listings ListingServiceInterface
	reviews  ReviewServiceInterface
}

func NewProfileHandler(service ProfileServiceInterface, listings ListingServiceInterface, reviews ReviewServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service, listings: listings, reviews: reviews}
}

// CreateProfileHandler handles POST /profiles
func (h *ProfileHandler) CreateProfileHandler(c *gin.Context) {
	var req helpers.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProfileHandler", err)
		return
	}

	profile, err := h.service.CreateProfile(profiles.ProfileInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ImageURL:  req.ImageURL,
		Bio:       req.Bio,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateProfileHandler: failed to create profile", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, profile, "profile created successfully")
	helpers.LogSuccess("CreateProfileHandler", "profile created successfully", map[string]any{
		"profile_id": profile.ProfileID,
		"username":   profile.Username,
	})
}

// GetProfileHandler handles GET /profiles/:profile_id
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	profileID := c.Param("profile_id")
	profile, err := h.service.GetProfile(profileID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProfileHandler: error retrieving profile", map[string]any{"profile_id": profileID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile, "profile retrieved successfully")
}

// UpdateProfileHandler handles PUT /profiles/:profile_id
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	profileID := c.Param("profile_id")

	var req helpers.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	profile, err := h.service.UpdateProfile(profileID, profiles.ProfileInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ImageURL:  req.ImageURL,
		Bio:       req.Bio,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateProfileHandler: failed to update profile", map[string]any{"profile_id": profileID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile, "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "profile updated successfully", map[string]any{
		"profile_id": profile.ProfileID,
	})
}

// ListProfilesHandler handles GET /profiles
func (h *ProfileHandler) ListProfilesHandler(c *gin.Context) {
	result := h.service.ListProfiles()
	utils.JSONResponse(c, http.StatusOK, result, "profiles retrieved successfully")
}

// GetProfileListingsHandler handles GET /profiles/:profile_id/listings
func (h *ProfileHandler) GetProfileListingsHandler(c *gin.Context) {
	profileID := c.Param("profile_id")
	if _, err := h.service.GetProfile(profileID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	result, err := h.listings.ListingsByOwner(profileID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProfileListingsHandler: error retrieving listings", map[string]any{"profile_id": profileID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "listings retrieved successfully")
}

// GetProfileReviewsHandler handles GET /profiles/:profile_id/reviews
func (h *ProfileHandler) GetProfileReviewsHandler(c *gin.Context) {
	profileID := c.Param("profile_id")
	result, err := h.reviews.ReviewsForProfile(profileID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProfileReviewsHandler: error retrieving reviews", map[string]any{"profile_id": profileID, "error": err.Error()})
		return
	}

	if result == nil {
		result = []model.Review{}
	}

	utils.JSONResponse(c, http.StatusOK, result, "reviews retrieved successfully")
}

// GetProfileRatingHandler handles GET /profiles/:profile_id/rating
func (h *ProfileHandler) GetProfileRatingHandler(c *gin.Context) {
	profileID := c.Param("profile_id")
	summary, err := h.reviews.AverageRating(profileID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProfileRatingHandler: error computing rating", map[string]any{"profile_id": profileID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, summary, "rating retrieved successfully")
}
