package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/csemotors/dealership/internal/session"
)

// claimsKey is the echo context key holding the verified session claims.
const claimsKey = "claims"

// Session verifies the session cookie and injects the claims into the
// request context. Requests without a valid token continue anonymously;
// the gates decide whether that matters. An invalid or expired cookie is
// cleared so the browser stops presenting a dead token.
func Session(issuer *session.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims, err := issuer.Verify(cookie.Value)
			if err != nil {
				session.ClearCookie(c)
				return next(c)
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom extracts the claims injected by Session. The second return
// is false for anonymous requests.
func ClaimsFrom(c echo.Context) (*session.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*session.Claims)
	return claims, ok && claims != nil
}
