package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pantherbooks/identity/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("account repository: account not found")
	ErrQueryFailed = errors.New("account repository: query failed")
)

// Repository is the identity store consumed by the service.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	Create(ctx context.Context, params CreateParams) (Account, error)

	// SaveVerificationCode overwrites the code fields, discarding any
	// previously issued code.
	SaveVerificationCode(ctx context.Context, accountID, codeHash string, expiresAt time.Time) error

	// MarkVerified flips the verified flag and clears both code fields in a
	// single atomic update keyed by account id.
	MarkVerified(ctx context.Context, accountID string) error
}

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(db db.Executor) *SQLRepository {
	return &SQLRepository{db: db}
}

type CreateParams struct {
	FullName      string
	Email         string
	PasswordHash  string
	CodeHash      string
	CodeExpiresAt time.Time
}

const queryAccountCreate = `
INSERT INTO accounts (id, full_name, email, password_hash, code_hash, code_expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, full_name, email, verified, created_at, updated_at
`

func (r *SQLRepository) Create(ctx context.Context, params CreateParams) (Account, error) {
	id := uuid.NewString()
	row := r.db.QueryRowContext(ctx, queryAccountCreate,
		id, params.FullName, params.Email, params.PasswordHash, params.CodeHash, params.CodeExpiresAt)

	var a Account
	if err := row.Scan(&a.ID, &a.FullName, &a.Email, &a.Verified, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return a, fmt.Errorf("%w: create account with email %s: %v", ErrQueryFailed, params.Email, err)
	}
	return a, nil
}

const queryAccountFindByEmail = `
SELECT id, full_name, email, password_hash, verified, code_hash, code_expires_at, created_at, updated_at
FROM accounts
WHERE email = $1
LIMIT 1
`

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	row := r.db.QueryRowContext(ctx, queryAccountFindByEmail, email)
	var a Account
	err := row.Scan(&a.ID, &a.FullName, &a.Email, &a.PasswordHash, &a.Verified,
		&a.CodeHash, &a.CodeExpiresAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find account with email %s: %v", ErrQueryFailed, email, err)
	}
	return &a, nil
}

const queryAccountSaveCode = `
UPDATE accounts
SET code_hash = $1, code_expires_at = $2, updated_at = NOW()
WHERE id = $3
`

func (r *SQLRepository) SaveVerificationCode(ctx context.Context, accountID, codeHash string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx, queryAccountSaveCode, codeHash, expiresAt, accountID)
	if err != nil {
		return fmt.Errorf("%w: save verification code for account %s: %v", ErrQueryFailed, accountID, err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: get rows affected: %v", ErrQueryFailed, err)
	}

	if numRows == 0 {
		return ErrNotFound
	}

	return nil
}

const queryAccountMarkVerified = `
UPDATE accounts
SET verified = TRUE, code_hash = NULL, code_expires_at = NULL, updated_at = NOW()
WHERE id = $1
`

func (r *SQLRepository) MarkVerified(ctx context.Context, accountID string) error {
	res, err := r.db.ExecContext(ctx, queryAccountMarkVerified, accountID)
	if err != nil {
		return fmt.Errorf("%w: mark account %s verified: %v", ErrQueryFailed, accountID, err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: get rows affected: %v", ErrQueryFailed, err)
	}

	if numRows == 0 {
		return ErrNotFound
	}

	return nil
}
