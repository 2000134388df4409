package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayease-backend/dto"
)

func TestReviewService_CreateUpdatesListingRating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	host := f.user(t, "host")
	p := f.property(t, host.ID, "Cabin", "Bergen", 70)

	for i, rating := range []int{5, 4, 5} {
		u := f.user(t, []string{"ana", "ben", "cleo"}[i])
		_, err := f.reviews.Create(ctx, u.ID, p.ID, dto.ReviewRequest{Rating: rating, Comment: "Lovely stay"})
		require.NoError(t, err)
	}

	summary, err := f.reviews.ListForProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 4.67, summary.AverageRating)
	assert.Equal(t, "4.7", summary.Display)
	assert.Equal(t, 4, summary.Stars.Full)
	assert.Equal(t, 1, summary.Stars.Half)

	detail, err := f.properties.Get(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Rating)
	assert.Equal(t, 47, *detail.Rating)
	assert.Equal(t, 4.7, detail.AverageRating)
}

func TestReviewService_OneReviewPerUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	host := f.user(t, "host")
	guest := f.user(t, "guest")
	p := f.property(t, host.ID, "Cabin", "Bergen", 70)

	_, err := f.reviews.Create(ctx, guest.ID, p.ID, dto.ReviewRequest{Rating: 4, Comment: "Nice"})
	require.NoError(t, err)

	_, err = f.reviews.Create(ctx, guest.ID, p.ID, dto.ReviewRequest{Rating: 1, Comment: "Again"})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "unique", ve.Fields[0].Rule)
}

func TestReviewService_AuthorOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	host := f.user(t, "host")
	author := f.user(t, "author")
	other := f.user(t, "other")
	p := f.property(t, host.ID, "Cabin", "Bergen", 70)

	review, err := f.reviews.Create(ctx, author.ID, p.ID, dto.ReviewRequest{Rating: 2, Comment: "Cold"})
	require.NoError(t, err)

	_, err = f.reviews.Update(ctx, other.ID, review.ID, dto.ReviewRequest{Rating: 5, Comment: "Great"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, f.reviews.Delete(ctx, 0, review.ID), ErrUnauthorized)

	updated, err := f.reviews.Update(ctx, author.ID, review.ID, dto.ReviewRequest{Rating: 4, Comment: "Warmer now"})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)

	detail, err := f.properties.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, *detail.Rating)

	require.NoError(t, f.reviews.Delete(ctx, author.ID, review.ID))
	detail, err = f.properties.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.Rating)
}

func TestReviewService_UnknownProperty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "ana")

	_, err := f.reviews.ListForProperty(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.reviews.Create(ctx, u.ID, 42, dto.ReviewRequest{Rating: 3, Comment: "?"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewService_DeletedAccountCannotReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	host := f.user(t, "host")
	guest := f.user(t, "guest")
	p := f.property(t, host.ID, "Chalet", "Zermatt", 300)

	require.NoError(t, f.users.Delete(ctx, guest.ID))

	_, err := f.reviews.Create(ctx, guest.ID, p.ID, dto.ReviewRequest{Rating: 5, Comment: "Ghost review"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}
