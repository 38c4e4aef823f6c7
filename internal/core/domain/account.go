package domain

import (
	"errors"
	"time"
)

// Role is the closed set of account types.
type Role string

const (
	RoleClient   Role = "Client"
	RoleEmployee Role = "Employee"
	RoleAdmin    Role = "Admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleEmployee || r == RoleAdmin
}

// Elevated reports whether the role may manage inventory.
func (r Role) Elevated() bool {
	return r == RoleEmployee || r == RoleAdmin
}

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("access forbidden")
)

// Account models a registered user of the site. PasswordHash is never
// rendered or serialized.
type Account struct {
	ID           int
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName is the display name used in account views.
func (a Account) FullName() string {
	return a.FirstName + " " + a.LastName
}
