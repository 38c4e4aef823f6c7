package ports

import (
	"context"

	"github.com/csemotors/dealership/internal/core/domain"
)

// CreateAccountInput carries the fields persisted for a new registration.
// Role is always Client at creation time.
type CreateAccountInput struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

// UpdateProfileInput carries the mutable profile fields.
type UpdateProfileInput struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
}

// AccountRepository is the credential store. Implementations map a lost
// uniqueness race on email to domain.ErrEmailExists rather than a raw
// driver error.
type AccountRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	// EmailExistsExcept ignores the row owned by accountID, for the
	// profile-update path where keeping your own email is not a conflict.
	EmailExistsExcept(ctx context.Context, email string, accountID int) (bool, error)
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	GetByID(ctx context.Context, id int) (domain.Account, error)
	Insert(ctx context.Context, input CreateAccountInput) (domain.Account, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (domain.Account, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) (domain.Account, error)
}
