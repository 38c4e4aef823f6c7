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
	"github.com/csemotors/dealership/internal/session"
)

// AccountHandler serves registration, login and account maintenance.
type AccountHandler struct {
	accounts      ports.AccountService
	issuer        *session.Issuer
	pages         *PageBuilder
	validate      *validator.Validate
	flashes       flasher
	secureCookies bool
}

// flasher is the slice of flash.Flash the handlers need; an interface so
// handler tests can run without Redis.
type flasher interface {
	Notice(c echo.Context, message string)
	Error(c echo.Context, message string)
}

func NewAccountHandler(accounts ports.AccountService, issuer *session.Issuer, pages *PageBuilder, validate *validator.Validate, flashes flasher, secureCookies bool) *AccountHandler {
	return &AccountHandler{
		accounts:      accounts,
		issuer:        issuer,
		pages:         pages,
		validate:      validate,
		flashes:       flashes,
		secureCookies: secureCookies,
	}
}

// --- View data ---

type loginPage struct {
	Email string
}

type registerPage struct {
	FirstName string
	LastName  string
	Email     string
}

type accountPage struct {
	Account  domain.Account
	Elevated bool
}

type updatePage struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
}

// LoginView handles GET /account/login.
func (h *AccountHandler) LoginView(c echo.Context) error {
	page := h.pages.Build(c, "Login")
	page.Data = loginPage{}
	return c.Render(http.StatusOK, "account/login", page)
}

// Login handles POST /account/login.
func (h *AccountHandler) Login(c echo.Context) error {
	var form forms.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form.Trim()

	if errs := forms.Check(h.validate, &form); errs.Any() {
		metrics.ValidationFailuresTotal.WithLabelValues("login").Inc()
		page := h.pages.Build(c, "Login")
		page.Errors = errs
		page.Data = loginPage{Email: form.Email}
		return c.Render(http.StatusBadRequest, "account/login", page)
	}

	account, err := h.accounts.Authenticate(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			page := h.pages.Build(c, "Login")
			page.Alerts = append(page.Alerts, "Invalid email or password.")
			page.Data = loginPage{Email: form.Email}
			return c.Render(http.StatusBadRequest, "account/login", page)
		}
		return err
	}

	token, err := h.issuer.Issue(account)
	if err != nil {
		return fmt.Errorf("issue session token: %w", err)
	}
	session.SetCookie(c, token, h.issuer.TTL(), h.secureCookies)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusSeeOther, "/account/")
}

// RegisterView handles GET /account/register.
func (h *AccountHandler) RegisterView(c echo.Context) error {
	page := h.pages.Build(c, "Register")
	page.Data = registerPage{}
	return c.Render(http.StatusOK, "account/register", page)
}

// Register handles POST /account/register. Validation failures and a
// duplicate email both re-render the form with the submitted values;
// the password is never echoed back.
func (h *AccountHandler) Register(c echo.Context) error {
	var form forms.RegisterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form.Trim()

	sticky := registerPage{FirstName: form.FirstName, LastName: form.LastName, Email: form.Email}

	if errs := forms.Check(h.validate, &form); errs.Any() {
		metrics.ValidationFailuresTotal.WithLabelValues("register").Inc()
		metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		page := h.pages.Build(c, "Register")
		page.Errors = errs
		page.Data = sticky
		return c.Render(http.StatusBadRequest, "account/register", page)
	}

	account, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
			page := h.pages.Build(c, "Register")
			page.Errors = forms.ErrorSet{{Field: "email", Message: "Email exists. Please log in or use a different email."}}
			page.Data = sticky
			return c.Render(http.StatusBadRequest, "account/register", page)
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	h.flashes.Notice(c, fmt.Sprintf("Congratulations %s, you're registered. Please log in.", account.FirstName))
	return c.Redirect(http.StatusSeeOther, "/account/login")
}

// Logout handles GET /account/logout. The token stays valid until expiry;
// logout only clears the cookie.
func (h *AccountHandler) Logout(c echo.Context) error {
	session.ClearCookie(c)
	h.flashes.Notice(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Management handles GET /account/ behind the login gate.
func (h *AccountHandler) Management(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	account, err := h.accounts.GetAccount(c.Request().Context(), claims.AccountID)
	if err != nil {
		return err
	}

	page := h.pages.Build(c, "Account Management")
	page.Data = accountPage{Account: account, Elevated: account.Role.Elevated()}
	return c.Render(http.StatusOK, "account/management", page)
}

// UpdateView handles GET /account/update/:id.
func (h *AccountHandler) UpdateView(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.authorize(c, id); err != nil {
		return err
	}

	account, err := h.accounts.GetAccount(c.Request().Context(), id)
	if err != nil {
		return err
	}

	page := h.pages.Build(c, "Account Update")
	page.Data = updatePage{ID: account.ID, FirstName: account.FirstName, LastName: account.LastName, Email: account.Email}
	return c.Render(http.StatusOK, "account/update", page)
}

// Update handles POST /account/update/:id.
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.authorize(c, id); err != nil {
		return err
	}

	var form forms.UpdateAccountForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form.Trim()

	sticky := updatePage{ID: id, FirstName: form.FirstName, LastName: form.LastName, Email: form.Email}

	if errs := forms.Check(h.validate, &form); errs.Any() {
		metrics.ValidationFailuresTotal.WithLabelValues("update_account").Inc()
		page := h.pages.Build(c, "Account Update")
		page.Errors = errs
		page.Data = sticky
		return c.Render(http.StatusBadRequest, "account/update", page)
	}

	_, err = h.accounts.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		ID:        id,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			page := h.pages.Build(c, "Account Update")
			page.Errors = forms.ErrorSet{{Field: "email", Message: "Email exists. Please use a different email."}}
			page.Data = sticky
			return c.Render(http.StatusBadRequest, "account/update", page)
		}
		return err
	}

	h.flashes.Notice(c, "Account information updated.")
	return c.Redirect(http.StatusSeeOther, "/account/")
}

// ChangePassword handles POST /account/password. The target account is
// always the logged-in one; the form carries no account id.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var form forms.ChangePasswordForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form.Trim()

	if errs := forms.Check(h.validate, &form); errs.Any() {
		metrics.ValidationFailuresTotal.WithLabelValues("change_password").Inc()
		account, getErr := h.accounts.GetAccount(c.Request().Context(), claims.AccountID)
		if getErr != nil {
			return getErr
		}
		page := h.pages.Build(c, "Account Update")
		page.Errors = errs
		page.Data = updatePage{ID: account.ID, FirstName: account.FirstName, LastName: account.LastName, Email: account.Email}
		return c.Render(http.StatusBadRequest, "account/update", page)
	}

	if err := h.accounts.ChangePassword(c.Request().Context(), claims.AccountID, form.Password); err != nil {
		return err
	}

	h.flashes.Notice(c, "Password updated.")
	return c.Redirect(http.StatusSeeOther, "/account/")
}

// authorize permits the account owner and Admins.
func (h *AccountHandler) authorize(c echo.Context, targetID int) (*session.Claims, error) {
	claims, err := ctxClaims(c)
	if err != nil {
		return nil, err
	}
	if claims.AccountID != targetID && claims.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return claims, nil
}
