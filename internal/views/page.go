package views

import (
	"github.com/csemotors/dealership/internal/core/domain"
	"github.com/csemotors/dealership/internal/forms"
	"github.com/csemotors/dealership/internal/session"
)

// Page is the payload handed to every template: shared chrome plus the
// page-specific Data.
type Page struct {
	Title string
	// Nav is the classification list behind the navigation bar.
	Nav []domain.Classification
	// Notices and Alerts are one-shot flash messages, consumed exactly
	// once when the page is built.
	Notices []string
	Alerts  []string
	// Errors is the validation error set for sticky form re-renders.
	Errors forms.ErrorSet
	// Account is the verified session identity, nil for anonymous visitors.
	Account *session.Claims
	Data    any
}

// LoggedIn reports whether the page renders for an authenticated visitor.
func (p Page) LoggedIn() bool {
	return p.Account != nil
}
