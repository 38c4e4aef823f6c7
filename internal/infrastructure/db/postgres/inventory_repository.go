package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/csemotors/dealership/internal/core/domain"
	"github.com/csemotors/dealership/internal/core/ports"
)

// InventoryRepository persists classifications and vehicles.
type InventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const vehicleColumns = `inv_id, classification_id, inv_make, inv_model, inv_year,
		inv_description, inv_image, inv_thumbnail, inv_price, inv_miles, inv_color`

func (r *InventoryRepository) Classifications(ctx context.Context) ([]domain.Classification, error) {
	const query = `
		SELECT classification_id, classification_name
		FROM classification
		ORDER BY classification_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	defer rows.Close()

	var classifications []domain.Classification
	for rows.Next() {
		var c domain.Classification
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		classifications = append(classifications, c)
	}
	return classifications, rows.Err()
}

func (r *InventoryRepository) ClassificationByID(ctx context.Context, id int) (domain.Classification, error) {
	const query = `
		SELECT classification_id, classification_name
		FROM classification
		WHERE classification_id = $1`
	var c domain.Classification
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Classification{}, domain.ErrClassificationNotFound
		}
		return domain.Classification{}, err
	}
	return c, nil
}

func (r *InventoryRepository) InsertClassification(ctx context.Context, name string) (domain.Classification, error) {
	const query = `
		INSERT INTO classification (classification_name)
		VALUES ($1)
		RETURNING classification_id, classification_name`
	var c domain.Classification
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&c.ID, &c.Name); err != nil {
		if isUniqueViolation(err) {
			return domain.Classification{}, domain.ErrClassificationExists
		}
		return domain.Classification{}, err
	}
	return c, nil
}

func (r *InventoryRepository) VehiclesByClassification(ctx context.Context, classificationID int) ([]domain.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM inventory
		WHERE classification_id = $1
		ORDER BY inv_make, inv_model`
	rows, err := r.db.QueryContext(ctx, query, classificationID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *InventoryRepository) VehicleByID(ctx context.Context, id int) (domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM inventory WHERE inv_id = $1`
	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Vehicle{}, domain.ErrVehicleNotFound
		}
		return domain.Vehicle{}, err
	}
	return v, nil
}

func (r *InventoryRepository) InsertVehicle(ctx context.Context, input ports.VehicleInput) (domain.Vehicle, error) {
	query := `
		INSERT INTO inventory (classification_id, inv_make, inv_model, inv_year,
			inv_description, inv_image, inv_thumbnail, inv_price, inv_miles, inv_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + vehicleColumns
	return scanVehicle(r.db.QueryRowContext(ctx, query,
		input.ClassificationID, input.Make, input.Model, input.Year,
		input.Description, input.Image, input.Thumbnail, input.Price, input.Miles, input.Color))
}

func (r *InventoryRepository) UpdateVehicle(ctx context.Context, id int, input ports.VehicleInput) (domain.Vehicle, error) {
	query := `
		UPDATE inventory
		SET classification_id = $1,
			inv_make = $2,
			inv_model = $3,
			inv_year = $4,
			inv_description = $5,
			inv_image = $6,
			inv_thumbnail = $7,
			inv_price = $8,
			inv_miles = $9,
			inv_color = $10
		WHERE inv_id = $11
		RETURNING ` + vehicleColumns
	v, err := scanVehicle(r.db.QueryRowContext(ctx, query,
		input.ClassificationID, input.Make, input.Model, input.Year,
		input.Description, input.Image, input.Thumbnail, input.Price, input.Miles, input.Color, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Vehicle{}, domain.ErrVehicleNotFound
		}
		return domain.Vehicle{}, err
	}
	return v, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanVehicle(s scanner) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := s.Scan(
		&v.ID,
		&v.ClassificationID,
		&v.Make,
		&v.Model,
		&v.Year,
		&v.Description,
		&v.Image,
		&v.Thumbnail,
		&v.Price,
		&v.Miles,
		&v.Color,
	)
	return v, err
}
