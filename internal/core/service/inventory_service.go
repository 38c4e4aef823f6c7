package service

import (
	"context"
	"errors"

	"github.com/csemotors/dealership/internal/core/domain"
	"github.com/csemotors/dealership/internal/core/ports"
)

// InventoryService implements browsing and inventory management.
type InventoryService struct {
	repo ports.InventoryRepository
}

func NewInventoryService(repo ports.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) Navigation(ctx context.Context) ([]domain.Classification, error) {
	return s.repo.Classifications(ctx)
}

func (s *InventoryService) ClassificationListing(ctx context.Context, classificationID int) (ports.ClassificationPage, error) {
	classification, err := s.repo.ClassificationByID(ctx, classificationID)
	if err != nil {
		return ports.ClassificationPage{}, err
	}

	vehicles, err := s.repo.VehiclesByClassification(ctx, classificationID)
	if err != nil {
		return ports.ClassificationPage{}, err
	}

	return ports.ClassificationPage{Classification: classification, Vehicles: vehicles}, nil
}

func (s *InventoryService) VehicleDetail(ctx context.Context, vehicleID int) (domain.Vehicle, error) {
	return s.repo.VehicleByID(ctx, vehicleID)
}

func (s *InventoryService) VehiclesByClassification(ctx context.Context, classificationID int) ([]domain.Vehicle, error) {
	return s.repo.VehiclesByClassification(ctx, classificationID)
}

func (s *InventoryService) AddClassification(ctx context.Context, name string) (domain.Classification, error) {
	return s.repo.InsertClassification(ctx, name)
}

func (s *InventoryService) AddVehicle(ctx context.Context, input ports.VehicleInput) (domain.Vehicle, error) {
	if err := s.checkClassification(ctx, input.ClassificationID); err != nil {
		return domain.Vehicle{}, err
	}
	return s.repo.InsertVehicle(ctx, input)
}

func (s *InventoryService) EditVehicle(ctx context.Context, vehicleID int, input ports.VehicleInput) (domain.Vehicle, error) {
	if err := s.checkClassification(ctx, input.ClassificationID); err != nil {
		return domain.Vehicle{}, err
	}
	return s.repo.UpdateVehicle(ctx, vehicleID, input)
}

func (s *InventoryService) checkClassification(ctx context.Context, id int) error {
	_, err := s.repo.ClassificationByID(ctx, id)
	if errors.Is(err, domain.ErrClassificationNotFound) {
		return domain.ErrClassificationNotFound
	}
	return err
}
