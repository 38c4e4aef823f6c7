package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/csemotors/dealership/internal/core/domain"
	"github.com/csemotors/dealership/internal/core/ports"
)

// AccountRepository is the credential store backed by the account table.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `account_id, account_firstname, account_lastname, account_email,
		account_password, account_type, created_at, updated_at`

func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM account WHERE account_email = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

func (r *AccountRepository) EmailExistsExcept(ctx context.Context, email string, accountID int) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM account WHERE account_email = $1 AND account_id <> $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email, accountID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM account WHERE account_email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *AccountRepository) GetByID(ctx context.Context, id int) (domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM account WHERE account_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *AccountRepository) Insert(ctx context.Context, input ports.CreateAccountInput) (domain.Account, error) {
	query := `
		INSERT INTO account (account_firstname, account_lastname, account_email, account_password, account_type)
		VALUES ($1, $2, $3, $4, 'Client')
		RETURNING ` + accountColumns
	account, err := r.scanOne(r.db.QueryRowContext(ctx, query,
		input.FirstName, input.LastName, input.Email, input.PasswordHash))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Account{}, domain.ErrEmailExists
		}
		return domain.Account{}, err
	}
	return account, nil
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (domain.Account, error) {
	query := `
		UPDATE account
		SET account_firstname = $1,
			account_lastname = $2,
			account_email = $3,
			updated_at = now()
		WHERE account_id = $4
		RETURNING ` + accountColumns
	account, err := r.scanOne(r.db.QueryRowContext(ctx, query,
		input.FirstName, input.LastName, input.Email, input.ID))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Account{}, domain.ErrEmailExists
		}
		return domain.Account{}, err
	}
	return account, nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) (domain.Account, error) {
	query := `
		UPDATE account
		SET account_password = $1,
			updated_at = now()
		WHERE account_id = $2
		RETURNING ` + accountColumns
	return r.scanOne(r.db.QueryRowContext(ctx, query, passwordHash, id))
}

func (r *AccountRepository) scanOne(row *sql.Row) (domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.FirstName,
		&account.LastName,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrAccountNotFound
		}
		return domain.Account{}, err
	}
	return account, nil
}
