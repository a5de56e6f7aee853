package comments

import (
	"testing"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/clock"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newFixture() *CommentService {
	repo := repository.NewMemoryRepo(clock.Mock{T: testNow})
	repo.AddProfile(model.Profile{ProfileID: "seller", Username: "seller"})
	repo.AddProfile(model.Profile{ProfileID: "buyer", Username: "buyer"})
	repo.AddListing(model.Listing{
		ListingID:   "listing1",
		OwnerID:     "seller",
		StartingBid: 100,
		EndTime:     testNow.Add(time.Hour),
	})
	return NewCommentService(repo, clock.Mock{T: testNow})
}

// Tests AddComment
func TestCommentService_AddComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		listingID     string
		profileID     string
		text          string
		expectedError error
	}{
		{name: "valid_comment", listingID: "listing1", profileID: "buyer", text: "Is the strap original?", expectedError: nil},
		{name: "empty_listingID", listingID: "", profileID: "buyer", text: "hi", expectedError: auctionerrors.ErrInvalidComment},
		{name: "empty_profileID", listingID: "listing1", profileID: "", text: "hi", expectedError: auctionerrors.ErrInvalidComment},
		{name: "empty_text", listingID: "listing1", profileID: "buyer", text: "", expectedError: auctionerrors.ErrInvalidComment},
		{name: "unknown_listing", listingID: "listingX", profileID: "buyer", text: "hi", expectedError: auctionerrors.ErrListingNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service := newFixture()
			comment, err := service.AddComment(tc.listingID, tc.profileID, tc.text)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)

			require.NotEmpty(t, comment.CommentID)
			_, parseErr := uuid.Parse(comment.CommentID)
			require.NoError(t, parseErr, "CommentID should be a valid UUID")
			require.Equal(t, tc.text, comment.Text)
			require.Equal(t, testNow, comment.CreatedAt)
		})
	}
}

// Tests CommentsForListing ordering
func TestCommentService_CommentsForListing(t *testing.T) {
	t.Parallel()

	service := newFixture()

	_, err := service.CommentsForListing("")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidComment)

	_, err = service.CommentsForListing("listingX")
	require.ErrorIs(t, err, auctionerrors.ErrListingNotFound)

	cs, err := service.CommentsForListing("listing1")
	require.NoError(t, err)
	require.Empty(t, cs)

	for _, text := range []string{"first", "second", "third"} {
		_, err := service.AddComment("listing1", "buyer", text)
		require.NoError(t, err)
	}

	cs, err = service.CommentsForListing("listing1")
	require.NoError(t, err)
	require.Len(t, cs, 3)
	for i, text := range []string{"first", "second", "third"} {
		require.Equal(t, text, cs[i].Text, "comments keep insertion order")
	}
}
