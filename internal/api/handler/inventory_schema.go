package handler

import "github.com/csemotors/dealership/internal/core/domain"

// vehicleResponse is the JSON shape consumed by the management screen.
// Field names match the form/database naming so the front-end table code
// stays symmetric with the HTML forms.
type vehicleResponse struct {
	ID               int     `json:"inv_id"`
	ClassificationID int     `json:"classification_id"`
	Make             string  `json:"inv_make"`
	Model            string  `json:"inv_model"`
	Year             int     `json:"inv_year"`
	Price            float64 `json:"inv_price"`
	Miles            int     `json:"inv_miles"`
	Color            string  `json:"inv_color"`
}

func toVehicleResponses(vehicles []domain.Vehicle) []vehicleResponse {
	out := make([]vehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, vehicleResponse{
			ID:               v.ID,
			ClassificationID: v.ClassificationID,
			Make:             v.Make,
			Model:            v.Model,
			Year:             v.Year,
			Price:            v.Price,
			Miles:            v.Miles,
			Color:            v.Color,
		})
	}
	return out
}
