package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/csemotors/dealership/internal/api/flash"
	"github.com/csemotors/dealership/internal/core/domain"
	"github.com/csemotors/dealership/internal/core/ports"
	"github.com/csemotors/dealership/internal/forms"
	"github.com/csemotors/dealership/internal/views"
)

// fakeInventoryService is a configurable stand-in for the inventory
// service; zero values mean not-found.
type fakeInventoryService struct {
	nav          []domain.Classification
	listing      ports.ClassificationPage
	listingErr   error
	vehicle      domain.Vehicle
	vehicleErr   error
	vehicles     []domain.Vehicle
	addClassErr  error
	addedClass   string
	addVehErr    error
	addedVehicle *ports.VehicleInput
}

func (s *fakeInventoryService) Navigation(context.Context) ([]domain.Classification, error) {
	return s.nav, nil
}

func (s *fakeInventoryService) ClassificationListing(context.Context, int) (ports.ClassificationPage, error) {
	return s.listing, s.listingErr
}

func (s *fakeInventoryService) VehicleDetail(context.Context, int) (domain.Vehicle, error) {
	return s.vehicle, s.vehicleErr
}

func (s *fakeInventoryService) VehiclesByClassification(context.Context, int) ([]domain.Vehicle, error) {
	return s.vehicles, nil
}

func (s *fakeInventoryService) AddClassification(_ context.Context, name string) (domain.Classification, error) {
	if s.addClassErr != nil {
		return domain.Classification{}, s.addClassErr
	}
	s.addedClass = name
	return domain.Classification{ID: 1, Name: name}, nil
}

func (s *fakeInventoryService) AddVehicle(_ context.Context, input ports.VehicleInput) (domain.Vehicle, error) {
	if s.addVehErr != nil {
		return domain.Vehicle{}, s.addVehErr
	}
	s.addedVehicle = &input
	return domain.Vehicle{ID: 5, Make: input.Make, Model: input.Model}, nil
}

func (s *fakeInventoryService) EditVehicle(_ context.Context, id int, input ports.VehicleInput) (domain.Vehicle, error) {
	return domain.Vehicle{ID: id, Make: input.Make, Model: input.Model}, nil
}

type fakeReviewService struct {
	reviews []domain.Review
}

func (s *fakeReviewService) Add(_ context.Context, input ports.ReviewInput) (domain.Review, error) {
	review := domain.Review{ID: len(s.reviews) + 1, VehicleID: input.VehicleID, AccountID: input.AccountID, Rating: input.Rating, Comment: input.Comment}
	s.reviews = append(s.reviews, review)
	return review, nil
}

func (s *fakeReviewService) ListByVehicle(context.Context, int) ([]domain.Review, error) {
	return s.reviews, nil
}

type inventoryFixture struct {
	handler *InventoryHandler
	echo    *echo.Echo
	store   *memoryFlashStore
	svc     *fakeInventoryService
	reviews *fakeReviewService
}

func newInventoryFixture(t *testing.T, svc *fakeInventoryService) *inventoryFixture {
	t.Helper()

	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e := echo.New()
	e.Renderer = renderer

	store := newMemoryFlashStore()
	flashes := flash.New(store, false, zerolog.Nop())
	pages := NewPageBuilder(svc, flashes, zerolog.Nop())
	reviews := &fakeReviewService{}

	return &inventoryFixture{
		handler: NewInventoryHandler(svc, reviews, pages, forms.New(), flashes),
		echo:    e,
		store:   store,
		svc:     svc,
		reviews: reviews,
	}
}

func getRequest(e *echo.Echo, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestClassification_RendersVehicles(t *testing.T) {
	svc := &fakeInventoryService{
		listing: ports.ClassificationPage{
			Classification: domain.Classification{ID: 2, Name: "SUV"},
			Vehicles: []domain.Vehicle{
				{ID: 1, Make: "Ford", Model: "Escape", Price: 21000, Thumbnail: "/images/vehicles/escape-tn.jpg"},
			},
		},
	}
	fx := newInventoryFixture(t, svc)

	c, rec := getRequest(fx.echo, "/inv/type/2")
	c.SetParamNames("classificationId")
	c.SetParamValues("2")

	if err := fx.handler.Classification(c); err != nil {
		t.Fatalf("Classification returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "SUV vehicles") {
		t.Fatal("expected classification title in body")
	}
	if !strings.Contains(body, "Ford Escape") {
		t.Fatal("expected vehicle name in body")
	}
}

func TestClassification_EmptyListing(t *testing.T) {
	svc := &fakeInventoryService{
		listing: ports.ClassificationPage{Classification: domain.Classification{ID: 3, Name: "Convertible"}},
	}
	fx := newInventoryFixture(t, svc)

	c, rec := getRequest(fx.echo, "/inv/type/3")
	c.SetParamNames("classificationId")
	c.SetParamValues("3")

	if err := fx.handler.Classification(c); err != nil {
		t.Fatalf("Classification returned error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Sorry, no matching vehicles could be found.") {
		t.Fatal("expected empty-listing message in body")
	}
}

func TestClassification_Missing(t *testing.T) {
	svc := &fakeInventoryService{listingErr: domain.ErrClassificationNotFound}
	fx := newInventoryFixture(t, svc)

	c, _ := getRequest(fx.echo, "/inv/type/99")
	c.SetParamNames("classificationId")
	c.SetParamValues("99")

	err := fx.handler.Classification(c)
	if !errors.Is(err, domain.ErrClassificationNotFound) {
		t.Fatalf("expected ErrClassificationNotFound, got %v", err)
	}
}

func TestDetail_RendersVehicleAndReviews(t *testing.T) {
	svc := &fakeInventoryService{
		vehicle: domain.Vehicle{
			ID: 4, Make: "Jeep", Model: "Wrangler", Year: 2021,
			Price: 32999, Miles: 41000, Color: "Yellow",
			Description: "Trail rated.", Image: "/images/vehicles/wrangler.jpg",
		},
	}
	fx := newInventoryFixture(t, svc)
	fx.reviews.reviews = []domain.Review{
		{ID: 1, VehicleID: 4, Rating: 5, Comment: "Loved it", ReviewerFirst: "Sam", ReviewerLast: "Porter"},
	}

	c, rec := getRequest(fx.echo, "/inv/detail/4")
	c.SetParamNames("invId")
	c.SetParamValues("4")

	if err := fx.handler.Detail(c); err != nil {
		t.Fatalf("Detail returned error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Jeep Wrangler") {
		t.Fatal("expected vehicle name in body")
	}
	if !strings.Contains(body, "$32,999") {
		t.Fatal("expected formatted price in body")
	}
	if !strings.Contains(body, "Loved it") {
		t.Fatal("expected review comment in body")
	}
}

func TestAddClassification_Success(t *testing.T) {
	svc := &fakeInventoryService{}
	fx := newInventoryFixture(t, svc)

	c, rec := postForm(fx.echo, "/inv/add-classification", url.Values{
		"classification_name": {"Electric"},
	})

	if err := fx.handler.AddClassification(c); err != nil {
		t.Fatalf("AddClassification returned error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if svc.addedClass != "Electric" {
		t.Fatalf("expected classification to be added, got %q", svc.addedClass)
	}
	msgs := fx.store.all()
	if len(msgs) != 1 || !strings.Contains(msgs[0], "Electric classification was added") {
		t.Fatalf("expected success notice, got %v", msgs)
	}
}

func TestAddClassification_InvalidName(t *testing.T) {
	svc := &fakeInventoryService{}
	fx := newInventoryFixture(t, svc)

	c, rec := postForm(fx.echo, "/inv/add-classification", url.Values{
		"classification_name": {"Sport Utility"},
	})

	if err := fx.handler.AddClassification(c); err != nil {
		t.Fatalf("AddClassification returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.addedClass != "" {
		t.Fatal("service should not have been called")
	}
	body := rec.Body.String()
	if !strings.Contains(body, "must contain only letters and numbers") {
		t.Fatal("expected validation message in body")
	}
	if !strings.Contains(body, "Sport Utility") {
		t.Fatal("expected sticky name in re-rendered form")
	}
}

func TestAddClassification_Duplicate(t *testing.T) {
	svc := &fakeInventoryService{addClassErr: domain.ErrClassificationExists}
	fx := newInventoryFixture(t, svc)

	c, rec := postForm(fx.echo, "/inv/add-classification", url.Values{
		"classification_name": {"SUV"},
	})

	if err := fx.handler.AddClassification(c); err != nil {
		t.Fatalf("AddClassification returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "That classification already exists.") {
		t.Fatal("expected duplicate message in body")
	}
}

func TestAddVehicle_UnknownClassification(t *testing.T) {
	svc := &fakeInventoryService{
		nav:       []domain.Classification{{ID: 1, Name: "SUV"}},
		addVehErr: domain.ErrClassificationNotFound,
	}
	fx := newInventoryFixture(t, svc)

	c, rec := postForm(fx.echo, "/inv/add-inventory", url.Values{
		"classification_id": {"42"},
		"inv_make":          {"Ford"},
		"inv_model":         {"Escape"},
		"inv_year":          {"2022"},
		"inv_description":   {"Compact SUV"},
		"inv_image":         {"/images/vehicles/escape.jpg"},
		"inv_thumbnail":     {"/images/vehicles/escape-tn.jpg"},
		"inv_price":         {"21000"},
		"inv_miles":         {"12000"},
		"inv_color":         {"Blue"},
	})

	if err := fx.handler.AddVehicle(c); err != nil {
		t.Fatalf("AddVehicle returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please choose a valid classification.") {
		t.Fatal("expected classification message in body")
	}
}

func TestEditVehicle_InvalidFormKeepsVehicleTitle(t *testing.T) {
	svc := &fakeInventoryService{
		nav:     []domain.Classification{{ID: 2, Name: "SUV"}},
		vehicle: domain.Vehicle{ID: 7, Make: "Ford", Model: "Escape"},
	}
	fx := newInventoryFixture(t, svc)

	c, rec := postForm(fx.echo, "/inv/edit/7", url.Values{
		"classification_id": {"2"},
		"inv_make":          {""},
		"inv_model":         {"Escape"},
		"inv_year":          {"2022"},
		"inv_description":   {"Compact SUV"},
		"inv_image":         {"/images/vehicles/escape.jpg"},
		"inv_thumbnail":     {"/images/vehicles/escape-tn.jpg"},
		"inv_price":         {"21000"},
		"inv_miles":         {"12000"},
		"inv_color":         {"Blue"},
	})
	c.SetParamNames("invId")
	c.SetParamValues("7")

	if err := fx.handler.EditVehicle(c); err != nil {
		t.Fatalf("EditVehicle returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Edit Ford Escape") {
		t.Fatal("expected the vehicle's title on the re-rendered form")
	}
	if strings.Contains(body, "Edit Inventory") {
		t.Fatal("re-render should not fall back to a generic title")
	}
}

func TestListJSON(t *testing.T) {
	svc := &fakeInventoryService{
		vehicles: []domain.Vehicle{
			{ID: 1, ClassificationID: 2, Make: "Ford", Model: "Escape", Year: 2022, Price: 21000, Miles: 12000, Color: "Blue"},
		},
	}
	fx := newInventoryFixture(t, svc)

	c, rec := getRequest(fx.echo, "/inv/list/2")
	c.SetParamNames("classificationId")
	c.SetParamValues("2")

	if err := fx.handler.ListJSON(c); err != nil {
		t.Fatalf("ListJSON returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(payload))
	}
	if payload[0]["inv_make"] != "Ford" {
		t.Fatalf("unexpected payload: %v", payload[0])
	}
	if _, ok := payload[0]["inv_id"]; !ok {
		t.Fatal("expected inv_id in payload")
	}
}
