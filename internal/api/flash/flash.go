// Package flash carries one-shot user notices across redirect boundaries.
// Messages live in a server-side store keyed by an anonymous flash session
// cookie; each message is consumed exactly once.
package flash

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// CookieName identifies the visitor's flash session. The cookie carries
// only an opaque id, never message content.
const CookieName = "flash_session"

const (
	CategoryNotice = "notice"
	CategoryError  = "error"
)

// Store is the backing one-shot message store.
type Store interface {
	Add(ctx context.Context, sid, category, message string) error
	// Consume returns and clears all pending messages for the category.
	Consume(ctx context.Context, sid, category string) ([]string, error)
}

// Flash binds the store to the visitor's flash cookie. Failures are
// logged and swallowed: a lost notice must never fail the request that
// tried to set it.
type Flash struct {
	store  Store
	secure bool
	log    zerolog.Logger
}

func New(store Store, secure bool, log zerolog.Logger) *Flash {
	return &Flash{store: store, secure: secure, log: log}
}

// Notice queues an informational message for the next page render.
func (f *Flash) Notice(c echo.Context, message string) {
	f.add(c, CategoryNotice, message)
}

// Error queues a failure message for the next page render.
func (f *Flash) Error(c echo.Context, message string) {
	f.add(c, CategoryError, message)
}

// Consume returns all pending messages for the category and clears them.
// A second call in the same cycle returns nothing.
func (f *Flash) Consume(c echo.Context, category string) []string {
	sid := f.sessionID(c, false)
	if sid == "" {
		return nil
	}

	messages, err := f.store.Consume(c.Request().Context(), sid, category)
	if err != nil {
		f.log.Warn().Err(err).Str("category", category).Msg("flash consume failed")
		return nil
	}
	return messages
}

func (f *Flash) add(c echo.Context, category, message string) {
	sid := f.sessionID(c, true)
	if err := f.store.Add(c.Request().Context(), sid, category, message); err != nil {
		f.log.Warn().Err(err).Str("category", category).Msg("flash add failed")
	}
}

// sessionID returns the visitor's flash session id, minting a new cookie
// when mint is set and none is present. A freshly minted id is cached on
// the echo context so adds and consumes within one request agree on it.
func (f *Flash) sessionID(c echo.Context, mint bool) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if sid, ok := c.Get("flash_sid").(string); ok && sid != "" {
		return sid
	}
	if !mint {
		return ""
	}

	sid := uuid.NewString()
	c.Set("flash_sid", sid)
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}
