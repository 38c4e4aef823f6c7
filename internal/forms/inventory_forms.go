package forms

import "strings"

// ClassificationForm backs POST /inv/add-classification.
type ClassificationForm struct {
	Name string `form:"classification_name" validate:"required,alphanum"`
}

func (f *ClassificationForm) Trim() {
	f.Name = strings.TrimSpace(f.Name)
}

// InventoryForm backs POST /inv/add-inventory and POST /inv/edit/:id.
// Price and Miles allow zero, so they carry range tags instead of
// required.
type InventoryForm struct {
	ClassificationID int     `form:"classification_id" validate:"required,gte=1"`
	Make             string  `form:"inv_make"          validate:"required"`
	Model            string  `form:"inv_model"         validate:"required"`
	Year             int     `form:"inv_year"          validate:"required,modelyear"`
	Description      string  `form:"inv_description"   validate:"required"`
	Image            string  `form:"inv_image"         validate:"required"`
	Thumbnail        string  `form:"inv_thumbnail"     validate:"required"`
	Price            float64 `form:"inv_price"         validate:"gte=0"`
	Miles            int     `form:"inv_miles"         validate:"gte=0"`
	Color            string  `form:"inv_color"         validate:"required"`
}

func (f *InventoryForm) Trim() {
	f.Make = strings.TrimSpace(f.Make)
	f.Model = strings.TrimSpace(f.Model)
	f.Description = strings.TrimSpace(f.Description)
	f.Image = strings.TrimSpace(f.Image)
	f.Thumbnail = strings.TrimSpace(f.Thumbnail)
	f.Color = strings.TrimSpace(f.Color)
}

// ReviewForm backs POST /reviews/add.
type ReviewForm struct {
	VehicleID int    `form:"inv_id"  validate:"required,gte=1"`
	Rating    int    `form:"rating"  validate:"required,gte=1,lte=5"`
	Comment   string `form:"comment" validate:"required,max=500"`
}

func (f *ReviewForm) Trim() {
	f.Comment = strings.TrimSpace(f.Comment)
}
