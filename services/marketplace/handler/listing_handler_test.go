package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-marketplace/internal/auctionerrors"
	listings "auction-marketplace/internal/listingService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/marketplace/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test CreateListingHandler
func TestCreateListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockListingServiceInterface(ctrl)
	handler := NewListingHandler(mockService, 24*time.Hour)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/listings", handler.CreateListingHandler)

	now := time.Now().UTC()
	endTime := now.Add(48 * time.Hour)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_listing",
			requestBody: helpers.CreateListingRequest{
				OwnerID:     "seller1",
				Title:       "Antique clock",
				Description: "Working condition",
				StartingBid: 100,
				EndTime:     endTime,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateListing("seller1", gomock.Any()).
					Return(model.Listing{
						ListingID:   uuid.NewString(),
						OwnerID:     "seller1",
						Title:       "Antique clock",
						Description: "Working condition",
						StartingBid: 100,
						ListedAt:    now,
						EndTime:     endTime,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "listing created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				listingID := data["listing_id"].(string)
				require.NotEmpty(t, listingID)
				_, parseErr := uuid.Parse(listingID)
				require.NoError(t, parseErr, "ListingID should be a valid UUID")
				require.Equal(t, "seller1", data["owner_id"])
				require.Equal(t, "Antique clock", data["title"])
				require.Equal(t, 100.0, data["starting_bid"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_owner_id",
			requestBody: helpers.CreateListingRequest{
				Title:   "Antique clock",
				EndTime: endTime,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_title",
			requestBody: helpers.CreateListingRequest{
				OwnerID: "seller1",
				EndTime: endTime,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_end_time",
			requestBody: helpers.CreateListingRequest{
				OwnerID: "seller1",
				Title:   "Antique clock",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_invalid_listing",
			requestBody: helpers.CreateListingRequest{
				OwnerID:     "seller1",
				Title:       "Antique clock",
				StartingBid: -5,
				EndTime:     endTime,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateListing("seller1", gomock.Any()).
					Return(model.Listing{}, auctionerrors.ErrInvalidListing)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid listing details",
		},
		{
			name: "service_owner_not_found",
			requestBody: helpers.CreateListingRequest{
				OwnerID: "ghost",
				Title:   "Antique clock",
				EndTime: endTime,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateListing("ghost", gomock.Any()).
					Return(model.Listing{}, auctionerrors.ErrProfileNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "profile not found",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.CreateListingRequest{
				OwnerID: "seller1",
				Title:   "Antique clock",
				EndTime: endTime,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateListing("seller1", gomock.Any()).
					Return(model.Listing{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test ListListingsHandler and its query filters
func TestListListingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockListingServiceInterface(ctrl)
	handler := NewListingHandler(mockService, 24*time.Hour)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/listings", handler.ListListingsHandler)

	detail := func(id string, active bool) listings.Detail {
		return listings.Detail{
			Listing:    model.Listing{ListingID: id, OwnerID: "seller1", Title: "title-" + id},
			CurrentBid: 100,
			TimeLeft:   "1h0m0s",
			Active:     active,
		}
	}

	tests := []struct {
		name           string
		url            string
		mockSetup      func()
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "all_listings",
			url:  "/listings",
			mockSetup: func() {
				mockService.EXPECT().
					ListListings().
					Return([]listings.Detail{detail("listing1", true), detail("listing2", false)})
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name: "active_only",
			url:  "/listings?active=true",
			mockSetup: func() {
				mockService.EXPECT().
					ActiveListings().
					Return([]listings.Detail{detail("listing1", true)})
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name: "ending_within_default_window",
			url:  "/listings?ending_within=true",
			mockSetup: func() {
				mockService.EXPECT().
					EndingSoon(24 * time.Hour).
					Return([]listings.Detail{detail("listing1", true)})
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name: "ending_within_explicit_window",
			url:  "/listings?ending_within=6h",
			mockSetup: func() {
				mockService.EXPECT().
					EndingSoon(6 * time.Hour).
					Return([]listings.Detail{})
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "ending_within_bad_duration",
			url:            "/listings?ending_within=tomorrow",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			if w.Code != http.StatusOK {
				return
			}

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			data := resp["data"].([]any)
			require.Len(t, data, tc.expectedCount)
		})
	}
}

// Test UpdateListingHandler
func TestUpdateListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockListingServiceInterface(ctrl)
	handler := NewListingHandler(mockService, 24*time.Hour)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/listings/:listing_id", handler.UpdateListingHandler)

	endTime := time.Now().UTC().Add(48 * time.Hour)

	validBody := helpers.UpdateListingRequest{
		ProfileID: "seller1",
		Title:     "Updated title",
		EndTime:   endTime,
	}

	tests := []struct {
		name           string
		listingID      string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success_update",
			listingID:   "listing1",
			requestBody: validBody,
			mockSetup: func() {
				mockService.EXPECT().
					UpdateListing("listing1", "seller1", gomock.Any()).
					Return(model.Listing{ListingID: "listing1", OwnerID: "seller1", Title: "Updated title"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "listing updated successfully",
		},
		{
			name:           "invalid_json",
			listingID:      "listing1",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "not_owner",
			listingID:   "listing1",
			requestBody: helpers.UpdateListingRequest{ProfileID: "intruder", Title: "Updated title", EndTime: endTime},
			mockSetup: func() {
				mockService.EXPECT().
					UpdateListing("listing1", "intruder", gomock.Any()).
					Return(model.Listing{}, auctionerrors.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "profile does not own this listing",
		},
		{
			name:        "listing_has_bids",
			listingID:   "listing1",
			requestBody: validBody,
			mockSetup: func() {
				mockService.EXPECT().
					UpdateListing("listing1", "seller1", gomock.Any()).
					Return(model.Listing{}, auctionerrors.ErrListingHasBids)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "listing already has bids",
		},
		{
			name:        "listing_not_found",
			listingID:   "ghost",
			requestBody: validBody,
			mockSetup: func() {
				mockService.EXPECT().
					UpdateListing("ghost", "seller1", gomock.Any()).
					Return(model.Listing{}, auctionerrors.ErrListingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "listing not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPut, "/listings/"+tc.listingID, bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test DeleteListingHandler
func TestDeleteListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockListingServiceInterface(ctrl)
	handler := NewListingHandler(mockService, 24*time.Hour)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/listings/:listing_id", handler.DeleteListingHandler)

	tests := []struct {
		name           string
		url            string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success_delete",
			url:  "/listings/listing1?profile_id=seller1",
			mockSetup: func() {
				mockService.EXPECT().
					DeleteListing("listing1", "seller1").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "listing deleted successfully",
		},
		{
			name: "not_owner",
			url:  "/listings/listing1?profile_id=intruder",
			mockSetup: func() {
				mockService.EXPECT().
					DeleteListing("listing1", "intruder").
					Return(auctionerrors.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "profile does not own this listing",
		},
		{
			name: "listing_has_bids",
			url:  "/listings/listing1?profile_id=seller1",
			mockSetup: func() {
				mockService.EXPECT().
					DeleteListing("listing1", "seller1").
					Return(auctionerrors.ErrListingHasBids)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "listing already has bids",
		},
		{
			name: "listing_not_found",
			url:  "/listings/ghost?profile_id=seller1",
			mockSetup: func() {
				mockService.EXPECT().
					DeleteListing("ghost", "seller1").
					Return(auctionerrors.ErrListingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "listing not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, tc.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}
