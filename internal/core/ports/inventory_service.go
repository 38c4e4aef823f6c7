package ports

import (
	"context"

	"github.com/csemotors/dealership/internal/core/domain"
)

// ClassificationPage is the data behind /inv/type/:id.
type ClassificationPage struct {
	Classification domain.Classification
	Vehicles       []domain.Vehicle
}

// InventoryService defines the browsing and management use cases.
type InventoryService interface {
	// Navigation returns all classifications, ordered by name. Every page
	// render calls this to build the nav bar.
	Navigation(ctx context.Context) ([]domain.Classification, error)
	ClassificationListing(ctx context.Context, classificationID int) (ClassificationPage, error)
	VehicleDetail(ctx context.Context, vehicleID int) (domain.Vehicle, error)
	VehiclesByClassification(ctx context.Context, classificationID int) ([]domain.Vehicle, error)
	AddClassification(ctx context.Context, name string) (domain.Classification, error)
	// AddVehicle returns domain.ErrClassificationNotFound when the submitted
	// classification id does not exist.
	AddVehicle(ctx context.Context, input VehicleInput) (domain.Vehicle, error)
	EditVehicle(ctx context.Context, vehicleID int, input VehicleInput) (domain.Vehicle, error)
}
