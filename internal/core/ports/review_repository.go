package ports

import (
	"context"

	"github.com/csemotors/dealership/internal/core/domain"
)

// ReviewInput carries a validated review submission.
type ReviewInput struct {
	VehicleID int
	AccountID int
	Rating    int
	Comment   string
}

// ReviewRepository persists vehicle reviews.
type ReviewRepository interface {
	Insert(ctx context.Context, input ReviewInput) (domain.Review, error)
	// ListByVehicle returns reviews newest first with the reviewer's name
	// joined in.
	ListByVehicle(ctx context.Context, vehicleID int) ([]domain.Review, error)
}

// ReviewService defines the review use cases.
type ReviewService interface {
	// Add returns domain.ErrVehicleNotFound when the target vehicle does
	// not exist.
	Add(ctx context.Context, input ReviewInput) (domain.Review, error)
	ListByVehicle(ctx context.Context, vehicleID int) ([]domain.Review, error)
}
