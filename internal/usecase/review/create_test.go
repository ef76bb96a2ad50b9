package review

import (
	"context"
	"testing"

	"github.com/homebarberid/booking-api/internal/audit"
	"github.com/homebarberid/booking-api/internal/httperr"
	"github.com/homebarberid/booking-api/internal/models"
)

type fakeRepo struct {
	customer *models.CustomerProfile
	booking  *models.Booking
	reviews  map[uint]*models.Review

	created *models.Review
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reviews: map[uint]*models.Review{}}
}

func (f *fakeRepo) GetCustomerProfileByUserID(ctx context.Context, userID uint) (*models.CustomerProfile, error) {
	if f.customer == nil || f.customer.UserID != userID {
		return nil, httperr.ErrNotFound("customer_profile_missing")
	}
	return f.customer, nil
}

func (f *fakeRepo) GetBookingForCustomer(ctx context.Context, bookingID, customerProfileID uint) (*models.Booking, error) {
	if f.booking == nil || f.booking.ID != bookingID || f.booking.CustomerProfileID != customerProfileID {
		return nil, httperr.ErrNotFound("booking_not_found")
	}
	return f.booking, nil
}

func (f *fakeRepo) CreateReview(ctx context.Context, r *models.Review) error {
	for _, existing := range f.reviews {
		if existing.BookingID == r.BookingID {
			return httperr.ErrConflict("review_already_exists")
		}
	}
	r.ID = uint(len(f.reviews) + 1)
	f.reviews[r.ID] = r
	f.created = r
	return nil
}

func (f *fakeRepo) GetReviewForCustomer(ctx context.Context, reviewID, customerProfileID uint) (*models.Review, error) {
	r, ok := f.reviews[reviewID]
	if !ok {
		return nil, httperr.ErrNotFound("review_not_found")
	}
	return r, nil
}

func (f *fakeRepo) UpdateReview(ctx context.Context, r *models.Review) error {
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeRepo) DeleteReview(ctx context.Context, r *models.Review) error {
	delete(f.reviews, r.ID)
	return nil
}

func (f *fakeRepo) ListReviews(ctx context.Context) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		out = append(out, *r)
	}
	return out, nil
}

type nopSink struct{}

func (nopSink) Log(userID *uint, action, entity string, entityID *uint, metadata any) error {
	return nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{})
}

func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.customer = &models.CustomerProfile{ID: 4, UserID: 1}
	repo.booking = &models.Booking{ID: 10, CustomerProfileID: 4, Status: "completed"}
	return repo
}

func TestCreateReview(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateReview(repo, testDispatcher())

	r, err := uc.Execute(context.Background(), CreateReviewInput{
		UserID:    1,
		BookingID: 10,
		Rating:    5,
		Review:    "Rapi dan tepat waktu",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.BookingID != 10 || r.Rating != 5 {
		t.Fatalf("review not built from input: %+v", r)
	}
	if repo.created == nil {
		t.Fatalf("review was not persisted")
	}
}

func TestCreateReviewInvalidRating(t *testing.T) {
	uc := NewCreateReview(seededRepo(), testDispatcher())

	for _, rating := range []int{0, 6, -1} {
		_, err := uc.Execute(context.Background(), CreateReviewInput{
			UserID:    1,
			BookingID: 10,
			Rating:    rating,
		})
		if !httperr.IsBusiness(err, "invalid_rating") {
			t.Errorf("rating %d: expected invalid_rating, got %v", rating, err)
		}
	}
}

func TestCreateReviewForeignBookingRejected(t *testing.T) {
	repo := seededRepo()
	repo.booking.CustomerProfileID = 99
	uc := NewCreateReview(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		UserID:    1,
		BookingID: 10,
		Rating:    4,
	})
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found for foreign booking, got %v", err)
	}
}

func TestCreateReviewDuplicateConflicts(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateReview(repo, testDispatcher())

	if _, err := uc.Execute(context.Background(), CreateReviewInput{
		UserID: 1, BookingID: 10, Rating: 5,
	}); err != nil {
		t.Fatalf("first review failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		UserID: 1, BookingID: 10, Rating: 3,
	})
	if !httperr.IsBusiness(err, "review_already_exists") {
		t.Fatalf("expected review_already_exists, got %v", err)
	}
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("duplicate review must be a conflict")
	}
}
