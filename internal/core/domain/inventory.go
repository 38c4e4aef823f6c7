package domain

import "errors"

var (
	ErrVehicleNotFound        = errors.New("vehicle not found")
	ErrClassificationNotFound = errors.New("classification not found")
	ErrClassificationExists   = errors.New("classification already exists")
)

// Classification groups vehicles into the navigation categories shown on
// every page (Sedan, SUV, Truck, ...).
type Classification struct {
	ID   int
	Name string
}

// Vehicle is a single inventory item.
type Vehicle struct {
	ID               int
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

// Name is the "Make Model" heading used on detail and listing pages.
func (v Vehicle) Name() string {
	return v.Make + " " + v.Model
}
