package service

import (
	"context"

	"github.com/csemotors/dealership/internal/core/domain"
	"github.com/csemotors/dealership/internal/core/ports"
)

// ReviewService implements review submission and listing.
type ReviewService struct {
	reviews   ports.ReviewRepository
	inventory ports.InventoryRepository
}

func NewReviewService(reviews ports.ReviewRepository, inventory ports.InventoryRepository) *ReviewService {
	return &ReviewService{reviews: reviews, inventory: inventory}
}

func (s *ReviewService) Add(ctx context.Context, input ports.ReviewInput) (domain.Review, error) {
	// Reviews hang off a vehicle; reject submissions against ids that do
	// not exist instead of relying on the foreign key error.
	if _, err := s.inventory.VehicleByID(ctx, input.VehicleID); err != nil {
		return domain.Review{}, err
	}
	return s.reviews.Insert(ctx, input)
}

func (s *ReviewService) ListByVehicle(ctx context.Context, vehicleID int) ([]domain.Review, error) {
	return s.reviews.ListByVehicle(ctx, vehicleID)
}
