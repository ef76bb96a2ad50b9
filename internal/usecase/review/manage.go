package review

import (
	"context"

	domain "github.com/homebarberid/booking-api/internal/domain/review"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
)

type UpdateReviewInput struct {
	UserID   uint
	ReviewID uint

	Rating      *int
	Review      *string
	Description *string
}

type UpdateReview struct {
	repo domain.Repository
}

func NewUpdateReview(repo domain.Repository) *UpdateReview {
	return &UpdateReview{repo: repo}
}

func (uc *UpdateReview) Execute(
	ctx context.Context,
	in UpdateReviewInput,
) (*models.Review, error) {

	customer, err := uc.repo.GetCustomerProfileByUserID(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrValidation("customer_profile_missing")
	}

	r, err := uc.repo.GetReviewForCustomer(ctx, in.ReviewID, customer.ID)
	if err != nil {
		return nil, httperr.ErrNotFound("review_not_found")
	}

	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, httperr.ErrValidation("invalid_rating")
		}
		r.Rating = *in.Rating
	}
	if in.Review != nil {
		r.Review = *in.Review
	}
	if in.Description != nil {
		r.Description = *in.Description
	}

	if err := uc.repo.UpdateReview(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

type DeleteReview struct {
	repo domain.Repository
}

func NewDeleteReview(repo domain.Repository) *DeleteReview {
	return &DeleteReview{repo: repo}
}

func (uc *DeleteReview) Execute(
	ctx context.Context,
	userID uint,
	reviewID uint,
) error {

	customer, err := uc.repo.GetCustomerProfileByUserID(ctx, userID)
	if err != nil {
		return httperr.ErrValidation("customer_profile_missing")
	}

	r, err := uc.repo.GetReviewForCustomer(ctx, reviewID, customer.ID)
	if err != nil {
		return httperr.ErrNotFound("review_not_found")
	}

	return uc.repo.DeleteReview(ctx, r)
}

type ListReviews struct {
	repo domain.Repository
}

func NewListReviews(repo domain.Repository) *ListReviews {
	return &ListReviews{repo: repo}
}

func (uc *ListReviews) Execute(ctx context.Context) ([]models.Review, error) {
	return uc.repo.ListReviews(ctx)
}
