package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/csemotors/dealership/internal/api/flash"
	"github.com/csemotors/dealership/internal/api/middleware"
	"github.com/csemotors/dealership/internal/core/ports"
	"github.com/csemotors/dealership/internal/views"
)

// PageBuilder assembles the chrome every page shares: navigation, flash
// messages, and the viewer's identity. Flash messages are consumed here,
// exactly once per request.
type PageBuilder struct {
	inventory ports.InventoryService
	flash     *flash.Flash
	log       zerolog.Logger
}

func NewPageBuilder(inventory ports.InventoryService, f *flash.Flash, log zerolog.Logger) *PageBuilder {
	return &PageBuilder{inventory: inventory, flash: f, log: log}
}

func (b *PageBuilder) Build(c echo.Context, title string) views.Page {
	page := views.Page{
		Title:   title,
		Notices: b.flash.Consume(c, flash.CategoryNotice),
		Alerts:  b.flash.Consume(c, flash.CategoryError),
	}

	if claims, ok := middleware.ClaimsFrom(c); ok {
		page.Account = claims
	}

	// The site stays up with an empty nav bar when the classification
	// lookup fails; the page itself may still be renderable.
	nav, err := b.inventory.Navigation(c.Request().Context())
	if err != nil {
		b.log.Error().Err(err).Msg("building navigation failed")
	}
	page.Nav = nav

	return page
}
