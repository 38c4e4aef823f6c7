package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/csemotors/dealership/internal/core/domain"
	"github.com/csemotors/dealership/internal/core/ports"
)

// AccountService implements registration, login and profile maintenance.
type AccountService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
}

func NewAccountService(repo ports.AccountRepository, hasher ports.PasswordHasher) *AccountService {
	return &AccountService{repo: repo, hasher: hasher}
}

func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (domain.Account, error) {
	email := normalizeEmail(input.Email)

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return domain.Account{}, err
	}
	if exists {
		return domain.Account{}, domain.ErrEmailExists
	}

	hash, err := s.hasher.Hash(ctx, input.Password)
	if err != nil {
		return domain.Account{}, err
	}

	// The pre-check above races with concurrent registrations; the unique
	// constraint is authoritative and the repository reports a lost race
	// as ErrEmailExists too.
	return s.repo.Insert(ctx, ports.CreateAccountInput{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hash,
	})
}

func (s *AccountService) Authenticate(ctx context.Context, email, password string) (domain.Account, error) {
	account, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Account{}, domain.ErrInvalidCredentials
		}
		return domain.Account{}, err
	}

	if err := s.hasher.Compare(ctx, account.PasswordHash, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.Account{}, domain.ErrInvalidCredentials
		}
		return domain.Account{}, err
	}

	return account, nil
}

func (s *AccountService) GetAccount(ctx context.Context, id int) (domain.Account, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AccountService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (domain.Account, error) {
	input.Email = normalizeEmail(input.Email)

	taken, err := s.repo.EmailExistsExcept(ctx, input.Email, input.ID)
	if err != nil {
		return domain.Account{}, err
	}
	if taken {
		return domain.Account{}, domain.ErrEmailExists
	}

	return s.repo.UpdateProfile(ctx, input)
}

func (s *AccountService) ChangePassword(ctx context.Context, id int, password string) error {
	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return err
	}
	_, err = s.repo.UpdatePassword(ctx, id, hash)
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
