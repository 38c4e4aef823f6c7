package ports

import (
	"context"

	"github.com/csemotors/dealership/internal/core/domain"
)

// VehicleInput carries the validated fields for creating or updating a
// vehicle row.
type VehicleInput struct {
	ClassificationID int
	Make             string
	Model            string
	Year             int
	Description      string
	Image            string
	Thumbnail        string
	Price            float64
	Miles            int
	Color            string
}

// InventoryRepository persists classifications and vehicles.
type InventoryRepository interface {
	Classifications(ctx context.Context) ([]domain.Classification, error)
	ClassificationByID(ctx context.Context, id int) (domain.Classification, error)
	// InsertClassification maps a duplicate name to domain.ErrClassificationExists.
	InsertClassification(ctx context.Context, name string) (domain.Classification, error)
	VehiclesByClassification(ctx context.Context, classificationID int) ([]domain.Vehicle, error)
	VehicleByID(ctx context.Context, id int) (domain.Vehicle, error)
	InsertVehicle(ctx context.Context, input VehicleInput) (domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, id int, input VehicleInput) (domain.Vehicle, error)
}
