package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/csemotors/dealership/internal/api/metrics"
	"github.com/csemotors/dealership/internal/core/domain"
	"github.com/csemotors/dealership/internal/core/ports"
	"github.com/csemotors/dealership/internal/forms"
)

// InventoryHandler serves the public browsing pages and the elevated
// inventory management pages.
type InventoryHandler struct {
	inventory ports.InventoryService
	reviews   ports.ReviewService
	pages     *PageBuilder
	validate  *validator.Validate
	flashes   flasher
}

func NewInventoryHandler(inventory ports.InventoryService, reviews ports.ReviewService, pages *PageBuilder, validate *validator.Validate, flashes flasher) *InventoryHandler {
	return &InventoryHandler{
		inventory: inventory,
		reviews:   reviews,
		pages:     pages,
		validate:  validate,
		flashes:   flashes,
	}
}

// --- View data ---

type classificationListingPage struct {
	Vehicles []domain.Vehicle
}

type vehicleDetailPage struct {
	Vehicle domain.Vehicle
	Reviews []domain.Review
}

type inventoryManagementPage struct {
	Classifications []domain.Classification
}

type classificationFormPage struct {
	Name string
}

type vehicleFormPage struct {
	VehicleID       int
	Classifications []domain.Classification
	Form            forms.InventoryForm
}

// Home handles GET /.
func (h *InventoryHandler) Home(c echo.Context) error {
	page := h.pages.Build(c, "Home")
	return c.Render(http.StatusOK, "home", page)
}

// Classification handles GET /inv/type/:classificationId.
func (h *InventoryHandler) Classification(c echo.Context) error {
	id, err := intParam(c, "classificationId")
	if err != nil {
		return err
	}

	listing, err := h.inventory.ClassificationListing(c.Request().Context(), id)
	if err != nil {
		return err
	}

	page := h.pages.Build(c, listing.Classification.Name+" vehicles")
	page.Data = classificationListingPage{Vehicles: listing.Vehicles}
	return c.Render(http.StatusOK, "inventory/classification", page)
}

// Detail handles GET /inv/detail/:invId.
func (h *InventoryHandler) Detail(c echo.Context) error {
	id, err := intParam(c, "invId")
	if err != nil {
		return err
	}

	vehicle, err := h.inventory.VehicleDetail(c.Request().Context(), id)
	if err != nil {
		return err
	}

	reviews, err := h.reviews.ListByVehicle(c.Request().Context(), id)
	if err != nil {
		return err
	}

	page := h.pages.Build(c, vehicle.Name())
	page.Data = vehicleDetailPage{Vehicle: vehicle, Reviews: reviews}
	return c.Render(http.StatusOK, "inventory/detail", page)
}

// Management handles GET /inv/ behind the employee gate.
func (h *InventoryHandler) Management(c echo.Context) error {
	classifications, err := h.inventory.Navigation(c.Request().Context())
	if err != nil {
		return err
	}

	page := h.pages.Build(c, "Inventory Management")
	page.Data = inventoryManagementPage{Classifications: classifications}
	return c.Render(http.StatusOK, "inventory/management", page)
}

// AddClassificationView handles GET /inv/add-classification.
func (h *InventoryHandler) AddClassificationView(c echo.Context) error {
	page := h.pages.Build(c, "Add Classification")
	page.Data = classificationFormPage{}
	return c.Render(http.StatusOK, "inventory/add-classification", page)
}

// AddClassification handles POST /inv/add-classification.
func (h *InventoryHandler) AddClassification(c echo.Context) error {
	var form forms.ClassificationForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form.Trim()

	if errs := forms.Check(h.validate, &form); errs.Any() {
		metrics.ValidationFailuresTotal.WithLabelValues("add_classification").Inc()
		return h.renderClassificationForm(c, form.Name, errs)
	}

	classification, err := h.inventory.AddClassification(c.Request().Context(), form.Name)
	if err != nil {
		if errors.Is(err, domain.ErrClassificationExists) {
			errs := forms.ErrorSet{{Field: "classification_name", Message: "That classification already exists."}}
			return h.renderClassificationForm(c, form.Name, errs)
		}
		return err
	}

	h.flashes.Notice(c, fmt.Sprintf("The %s classification was added.", classification.Name))
	return c.Redirect(http.StatusSeeOther, "/inv/")
}

// AddVehicleView handles GET /inv/add-inventory.
func (h *InventoryHandler) AddVehicleView(c echo.Context) error {
	return h.renderVehicleForm(c, "Add Inventory", "inventory/add-inventory", vehicleFormPage{}, nil, http.StatusOK)
}

// AddVehicle handles POST /inv/add-inventory.
func (h *InventoryHandler) AddVehicle(c echo.Context) error {
	var form forms.InventoryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form.Trim()

	sticky := vehicleFormPage{Form: form}

	if errs := forms.Check(h.validate, &form); errs.Any() {
		metrics.ValidationFailuresTotal.WithLabelValues("add_inventory").Inc()
		return h.renderVehicleForm(c, "Add Inventory", "inventory/add-inventory", sticky, errs, http.StatusBadRequest)
	}

	vehicle, err := h.inventory.AddVehicle(c.Request().Context(), vehicleInput(form))
	if err != nil {
		if errors.Is(err, domain.ErrClassificationNotFound) {
			errs := forms.ErrorSet{{Field: "classification_id", Message: "Please choose a valid classification."}}
			return h.renderVehicleForm(c, "Add Inventory", "inventory/add-inventory", sticky, errs, http.StatusBadRequest)
		}
		return err
	}

	h.flashes.Notice(c, fmt.Sprintf("The %s was added to inventory.", vehicle.Name()))
	return c.Redirect(http.StatusSeeOther, "/inv/")
}

// EditVehicleView handles GET /inv/edit/:invId, prefilled from the row.
func (h *InventoryHandler) EditVehicleView(c echo.Context) error {
	id, err := intParam(c, "invId")
	if err != nil {
		return err
	}

	vehicle, err := h.inventory.VehicleDetail(c.Request().Context(), id)
	if err != nil {
		return err
	}

	data := vehicleFormPage{
		VehicleID: vehicle.ID,
		Form: forms.InventoryForm{
			ClassificationID: vehicle.ClassificationID,
			Make:             vehicle.Make,
			Model:            vehicle.Model,
			Year:             vehicle.Year,
			Description:      vehicle.Description,
			Image:            vehicle.Image,
			Thumbnail:        vehicle.Thumbnail,
			Price:            vehicle.Price,
			Miles:            vehicle.Miles,
			Color:            vehicle.Color,
		},
	}
	return h.renderVehicleForm(c, "Edit "+vehicle.Name(), "inventory/edit-inventory", data, nil, http.StatusOK)
}

// EditVehicle handles POST /inv/edit/:invId.
func (h *InventoryHandler) EditVehicle(c echo.Context) error {
	id, err := intParam(c, "invId")
	if err != nil {
		return err
	}

	var form forms.InventoryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form.Trim()

	// Re-renders carry the same title the edit view opened with, not the
	// submitted (possibly invalid) make and model.
	current, err := h.inventory.VehicleDetail(c.Request().Context(), id)
	if err != nil {
		return err
	}
	title := "Edit " + current.Name()

	sticky := vehicleFormPage{VehicleID: id, Form: form}

	if errs := forms.Check(h.validate, &form); errs.Any() {
		metrics.ValidationFailuresTotal.WithLabelValues("edit_inventory").Inc()
		return h.renderVehicleForm(c, title, "inventory/edit-inventory", sticky, errs, http.StatusBadRequest)
	}

	vehicle, err := h.inventory.EditVehicle(c.Request().Context(), id, vehicleInput(form))
	if err != nil {
		if errors.Is(err, domain.ErrClassificationNotFound) {
			errs := forms.ErrorSet{{Field: "classification_id", Message: "Please choose a valid classification."}}
			return h.renderVehicleForm(c, title, "inventory/edit-inventory", sticky, errs, http.StatusBadRequest)
		}
		return err
	}

	h.flashes.Notice(c, fmt.Sprintf("The %s was updated.", vehicle.Name()))
	return c.Redirect(http.StatusSeeOther, "/inv/")
}

// ListJSON handles GET /inv/list/:classificationId, feeding the
// management screen's vehicle table.
func (h *InventoryHandler) ListJSON(c echo.Context) error {
	id, err := intParam(c, "classificationId")
	if err != nil {
		return err
	}

	vehicles, err := h.inventory.VehiclesByClassification(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toVehicleResponses(vehicles))
}

func (h *InventoryHandler) renderClassificationForm(c echo.Context, name string, errs forms.ErrorSet) error {
	page := h.pages.Build(c, "Add Classification")
	page.Errors = errs
	page.Data = classificationFormPage{Name: name}
	return c.Render(http.StatusBadRequest, "inventory/add-classification", page)
}

func (h *InventoryHandler) renderVehicleForm(c echo.Context, title, template string, data vehicleFormPage, errs forms.ErrorSet, status int) error {
	classifications, err := h.inventory.Navigation(c.Request().Context())
	if err != nil {
		return err
	}
	data.Classifications = classifications

	page := h.pages.Build(c, title)
	page.Errors = errs
	page.Data = data
	return c.Render(status, template, page)
}

func vehicleInput(form forms.InventoryForm) ports.VehicleInput {
	return ports.VehicleInput{
		ClassificationID: form.ClassificationID,
		Make:             form.Make,
		Model:            form.Model,
		Year:             form.Year,
		Description:      form.Description,
		Image:            form.Image,
		Thumbnail:        form.Thumbnail,
		Price:            form.Price,
		Miles:            form.Miles,
		Color:            form.Color,
	}
}
