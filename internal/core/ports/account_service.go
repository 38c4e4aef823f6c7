package ports

import (
	"context"

	"github.com/csemotors/dealership/internal/core/domain"
)

// RegisterInput carries the validated registration form data. Password is
// the plaintext candidate; hashing happens inside the service.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AccountService defines the account use cases.
type AccountService interface {
	// Register creates a Client account. Returns domain.ErrEmailExists when
	// the email is already taken, including when a concurrent registration
	// wins the race at the data layer.
	Register(ctx context.Context, input RegisterInput) (domain.Account, error)
	// Authenticate returns the account when email and password match.
	// A missing account and a wrong password are indistinguishable to the
	// caller: both yield domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (domain.Account, error)
	GetAccount(ctx context.Context, id int) (domain.Account, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (domain.Account, error)
	ChangePassword(ctx context.Context, id int, password string) error
}

// PasswordHasher abstracts the bcrypt worker pool so services never run
// hashing inline on the request path.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Compare(ctx context.Context, hash, password string) error
}
