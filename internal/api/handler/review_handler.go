package handler

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/csemotors/dealership/internal/api/metrics"
	"github.com/csemotors/dealership/internal/core/ports"
	"github.com/csemotors/dealership/internal/forms"
)

// ReviewHandler serves the login-gated review form.
type ReviewHandler struct {
	reviews   ports.ReviewService
	inventory ports.InventoryService
	pages     *PageBuilder
	validate  *validator.Validate
	flashes   flasher
}

func NewReviewHandler(reviews ports.ReviewService, inventory ports.InventoryService, pages *PageBuilder, validate *validator.Validate, flashes flasher) *ReviewHandler {
	return &ReviewHandler{
		reviews:   reviews,
		inventory: inventory,
		pages:     pages,
		validate:  validate,
		flashes:   flashes,
	}
}

type reviewFormPage struct {
	VehicleID int
	Rating    int
	Comment   string
}

// AddView handles GET /reviews/add/:invId.
func (h *ReviewHandler) AddView(c echo.Context) error {
	id, err := intParam(c, "invId")
	if err != nil {
		return err
	}

	// 404 before showing a form that could never submit successfully.
	if _, err := h.inventory.VehicleDetail(c.Request().Context(), id); err != nil {
		return err
	}

	page := h.pages.Build(c, "Add Review")
	page.Data = reviewFormPage{VehicleID: id}
	return c.Render(http.StatusOK, "reviews/add", page)
}

// Add handles POST /reviews/add.
func (h *ReviewHandler) Add(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var form forms.ReviewForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form.Trim()

	if errs := forms.Check(h.validate, &form); errs.Any() {
		metrics.ValidationFailuresTotal.WithLabelValues("add_review").Inc()
		page := h.pages.Build(c, "Add Review")
		page.Errors = errs
		page.Data = reviewFormPage{VehicleID: form.VehicleID, Rating: form.Rating, Comment: form.Comment}
		return c.Render(http.StatusBadRequest, "reviews/add", page)
	}

	if _, err := h.reviews.Add(c.Request().Context(), ports.ReviewInput{
		VehicleID: form.VehicleID,
		AccountID: claims.AccountID,
		Rating:    form.Rating,
		Comment:   form.Comment,
	}); err != nil {
		return err
	}

	h.flashes.Notice(c, "Review submitted successfully.")
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/inv/detail/%d", form.VehicleID))
}
