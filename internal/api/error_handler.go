package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/csemotors/dealership/internal/core/domain"
	"github.com/csemotors/dealership/internal/views"
)

type errorPage struct {
	Status  int
	Message string
}

// NewHTTPErrorHandler returns the top-level error boundary:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors with request context, never leaking details
//     to the client.
//   - Renders the shared error page template.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		page := views.Page{
			Title: fmt.Sprintf("%d", code),
			Data:  errorPage{Status: code, Message: msg},
		}
		if renderErr := c.Render(code, "errors/error", page); renderErr != nil {
			// Last resort when the template itself fails.
			_ = c.HTML(code, fmt.Sprintf("<h1>%d</h1><p>%s</p>", code, msg))
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors: 404 from the router, bind failures, etc.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound {
			return he.Code, "Sorry, we appear to have lost that page."
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrVehicleNotFound):
		return http.StatusNotFound, "Sorry, that vehicle could not be found."
	case errors.Is(err, domain.ErrClassificationNotFound):
		return http.StatusNotFound, "Sorry, that classification could not be found."
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "Sorry, that account could not be found."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You are not permitted to do that."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Oh no! There was a crash. Maybe try a different route?"
}
