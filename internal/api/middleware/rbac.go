package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/csemotors/dealership/internal/api/flash"
	"github.com/csemotors/dealership/internal/api/metrics"
)

const loginPath = "/account/login"

// RequireLogin passes requests carrying verified claims and sends
// everyone else to the login form with a notice. Gates trust the claims
// for the token's lifetime; they never consult the credential store.
func RequireLogin(f *flash.Flash) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := ClaimsFrom(c); !ok {
				metrics.GateRedirectsTotal.WithLabelValues("login").Inc()
				f.Notice(c, "Please log in.")
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			return next(c)
		}
	}
}

// RequireEmployee passes only Employee and Admin accounts. Anonymous
// visitors and Clients get the same redirect-with-notice treatment.
func RequireEmployee(f *flash.Flash) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok || !claims.Role.Elevated() {
				metrics.GateRedirectsTotal.WithLabelValues("employee").Inc()
				f.Notice(c, "You do not have permission to access that page. Please log in with an employee account.")
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			return next(c)
		}
	}
}
