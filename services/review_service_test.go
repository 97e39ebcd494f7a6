package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReviewRejectedBeforeDelivery(t *testing.T) {
	f := newFixture(t)
	o := f.checkout(t)

	_, err := f.review.Submit(f.customer.ID, o.ID, &SubmitReviewReq{FoodRating: 5})
	require.ErrorIs(t, err, ErrNotDelivered)
}

func TestReviewAcceptedExactlyOnce(t *testing.T) {
	f := newFixture(t)
	o := f.checkout(t)
	f.deliver(t, o.ID)

	four := 4
	rv, err := f.review.Submit(f.customer.ID, o.ID, &SubmitReviewReq{
		FoodRating:   5,
		DriverRating: &four,
		Comment:      "hot and fast",
	})
	require.NoError(t, err)
	require.Equal(t, o.ID, rv.OrderID)
	require.NotNil(t, rv.DriverID)
	require.Equal(t, f.driver1.ID, *rv.DriverID)

	_, err = f.review.Submit(f.customer.ID, o.ID, &SubmitReviewReq{FoodRating: 1})
	require.ErrorIs(t, err, ErrAlreadyReviewed)

	all, err := f.review.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestReviewRatingValidation(t *testing.T) {
	f := newFixture(t)
	o := f.checkout(t)
	f.deliver(t, o.ID)

	_, err := f.review.Submit(f.customer.ID, o.ID, &SubmitReviewReq{FoodRating: 0})
	require.ErrorIs(t, err, ErrRatingRange)

	_, err = f.review.Submit(f.customer.ID, o.ID, &SubmitReviewReq{FoodRating: 6})
	require.ErrorIs(t, err, ErrRatingRange)

	bad := 9
	_, err = f.review.Submit(f.customer.ID, o.ID, &SubmitReviewReq{FoodRating: 3, DriverRating: &bad})
	require.ErrorIs(t, err, ErrRatingRange)
}

func TestReviewOnlyByOrderCustomer(t *testing.T) {
	f := newFixture(t)
	o := f.checkout(t)
	f.deliver(t, o.ID)

	_, err := f.review.Submit(f.driver1.ID, o.ID, &SubmitReviewReq{FoodRating: 5})
	require.ErrorIs(t, err, ErrForbidden)
}
