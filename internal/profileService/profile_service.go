package profiles

import (
	"fmt"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/clock"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

// ProfileInput carries the caller-editable fields of a profile
type ProfileInput struct {
	Username  string
	FirstName string
	LastName  string
	ImageURL  string
	Bio       string
}

// ProfileService defines the business logic for marketplace profiles
type ProfileService struct {
	store repository.ProfileStore
	clk   clock.Clock
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(store repository.ProfileStore, clk clock.Clock) *ProfileService {
	if clk == nil {
		clk = clock.Real{}
	}
	return &ProfileService{
		store: store,
		clk:   clk,
	}
}

// CreateProfile validates and stores a new profile
func (s *ProfileService) CreateProfile(in ProfileInput) (models.Profile, error) {
	if in.Username == "" {
		return models.Profile{}, fmt.Errorf("service: %w - missing username", auctionerrors.ErrInvalidProfile)
	}

	profile := models.Profile{
		ProfileID: utils.GenerateID(),
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		ImageURL:  in.ImageURL,
		Bio:       in.Bio,
		JoinedAt:  s.clk.Now(),
	}

	if err := s.store.CreateProfile(profile); err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to create profile %s: %w", in.Username, err)
	}

	return profile, nil
}

// GetProfile returns a profile by its identifier
func (s *ProfileService) GetProfile(profileID string) (models.Profile, error) {
	if profileID == "" {
		return models.Profile{}, fmt.Errorf("service: %w - empty profile ID", auctionerrors.ErrInvalidProfile)
	}

	profile, err := s.store.GetProfile(profileID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to get profile %s: %w", profileID, err)
	}

	return profile, nil
}

// UpdateProfile replaces a profile's editable fields, last writer wins
func (s *ProfileService) UpdateProfile(profileID string, in ProfileInput) (models.Profile, error) {
	if profileID == "" {
		return models.Profile{}, fmt.Errorf("service: %w - empty profile ID", auctionerrors.ErrInvalidProfile)
	}
	if in.Username == "" {
		return models.Profile{}, fmt.Errorf("service: %w - missing username", auctionerrors.ErrInvalidProfile)
	}

	updated := models.Profile{
		ProfileID: profileID,
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		ImageURL:  in.ImageURL,
		Bio:       in.Bio,
	}

	if err := s.store.UpdateProfile(updated); err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to update profile %s: %w", profileID, err)
	}

	profile, err := s.store.GetProfile(profileID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to reload profile %s: %w", profileID, err)
	}
	return profile, nil
}

// ListProfiles returns all profiles, newest first
func (s *ProfileService) ListProfiles() []models.Profile {
	return s.store.ListProfiles()
}
