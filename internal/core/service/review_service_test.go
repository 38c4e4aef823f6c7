package service

import (
	"context"
	"errors"
	"testing"

	"github.com/csemotors/dealership/internal/core/domain"
	"github.com/csemotors/dealership/internal/core/ports"
)

type stubReviewRepo struct {
	nextID  int
	reviews []domain.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{nextID: 1}
}

func (r *stubReviewRepo) Insert(_ context.Context, input ports.ReviewInput) (domain.Review, error) {
	review := domain.Review{
		ID:        r.nextID,
		VehicleID: input.VehicleID,
		AccountID: input.AccountID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	r.nextID++
	// Newest first, the order the repository query returns.
	r.reviews = append([]domain.Review{review}, r.reviews...)
	return review, nil
}

func (r *stubReviewRepo) ListByVehicle(_ context.Context, vehicleID int) ([]domain.Review, error) {
	var out []domain.Review
	for _, review := range r.reviews {
		if review.VehicleID == vehicleID {
			out = append(out, review)
		}
	}
	return out, nil
}

func TestReviewService_Add(t *testing.T) {
	inventory := newStubInventoryRepo()
	class, _ := inventory.InsertClassification(context.Background(), "SUV")
	vehicle, _ := inventory.InsertVehicle(context.Background(), testVehicleInput(class.ID))

	svc := NewReviewService(newStubReviewRepo(), inventory)

	review, err := svc.Add(context.Background(), ports.ReviewInput{
		VehicleID: vehicle.ID,
		AccountID: 3,
		Rating:    5,
		Comment:   "Handles great in snow.",
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if review.ID == 0 {
		t.Fatal("expected assigned id")
	}

	reviews, err := svc.ListByVehicle(context.Background(), vehicle.ID)
	if err != nil {
		t.Fatalf("ListByVehicle failed: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}
}

func TestReviewService_Add_UnknownVehicle(t *testing.T) {
	svc := NewReviewService(newStubReviewRepo(), newStubInventoryRepo())

	_, err := svc.Add(context.Background(), ports.ReviewInput{VehicleID: 99, AccountID: 1, Rating: 4, Comment: "x"})
	if !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}

func TestReviewService_ListByVehicle_NewestFirst(t *testing.T) {
	inventory := newStubInventoryRepo()
	class, _ := inventory.InsertClassification(context.Background(), "SUV")
	vehicle, _ := inventory.InsertVehicle(context.Background(), testVehicleInput(class.ID))

	svc := NewReviewService(newStubReviewRepo(), inventory)

	first, _ := svc.Add(context.Background(), ports.ReviewInput{VehicleID: vehicle.ID, AccountID: 1, Rating: 3, Comment: "ok"})
	second, _ := svc.Add(context.Background(), ports.ReviewInput{VehicleID: vehicle.ID, AccountID: 2, Rating: 5, Comment: "great"})

	reviews, err := svc.ListByVehicle(context.Background(), vehicle.ID)
	if err != nil {
		t.Fatalf("ListByVehicle failed: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].ID != second.ID || reviews[1].ID != first.ID {
		t.Fatalf("expected newest first, got order %d, %d", reviews[0].ID, reviews[1].ID)
	}
}
