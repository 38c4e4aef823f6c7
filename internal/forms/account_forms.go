package forms

import "strings"

// RegisterForm backs POST /account/register. Field names mirror the HTML
// inputs so echo's form binder fills them directly.
type RegisterForm struct {
	FirstName string `form:"account_firstname" validate:"required"`
	LastName  string `form:"account_lastname"  validate:"required,min=2"`
	Email     string `form:"account_email"     validate:"required,email"`
	Password  string `form:"account_password"  validate:"required,strongpw"`
}

func (f *RegisterForm) Trim() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Password = strings.TrimSpace(f.Password)
}

// LoginForm backs POST /account/login. Password strength is not checked
// here: login only cares whether the credential matches.
type LoginForm struct {
	Email    string `form:"account_email"    validate:"required,email"`
	Password string `form:"account_password" validate:"required"`
}

func (f *LoginForm) Trim() {
	f.Email = strings.TrimSpace(f.Email)
	f.Password = strings.TrimSpace(f.Password)
}

// UpdateAccountForm backs the profile half of POST /account/update/:id.
// The password lives on its own form, so an untouched password never
// trips validation here.
type UpdateAccountForm struct {
	FirstName string `form:"account_firstname" validate:"required"`
	LastName  string `form:"account_lastname"  validate:"required,min=2"`
	Email     string `form:"account_email"     validate:"required,email"`
}

func (f *UpdateAccountForm) Trim() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
}

// ChangePasswordForm backs POST /account/password. New passwords always
// meet the full strength policy.
type ChangePasswordForm struct {
	Password string `form:"account_password" validate:"required,strongpw"`
}

func (f *ChangePasswordForm) Trim() {
	f.Password = strings.TrimSpace(f.Password)
}
