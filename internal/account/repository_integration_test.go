//go:build integration

package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pantherbooks/identity/internal/account"
	"github.com/pantherbooks/identity/internal/platform/db"
	"github.com/pantherbooks/identity/internal/platform/otp"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const queryAccountSeed = `
INSERT INTO accounts (id, full_name, email, password_hash, verified, code_hash, code_expires_at, created_at, updated_at)
VALUES (
    '3d594650-3436-11e5-bf21-0800200c9a66',
    'Pounce Panther',
    'pounce@uwm.edu',
    '$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2U',
    FALSE,
    '8d969eef6ecad3c29a3a629280e686cf0c3f5d5a86aff3ca12020c923adc6c92',
    '2025-05-09T10:20:00Z',
    '2025-05-09T10:05:00Z',
    '2025-05-09T10:05:00Z'
);`

func TestIntegrationRepository_FindByEmail(t *testing.T) {
	t.Parallel()

	_, tx := db.Setup(t)

	if _, err := tx.Exec(queryAccountSeed); err != nil {
		t.Fatalf("failed to seed accounts: %v", err)
	}

	repo := account.NewRepository(tx)

	acct, err := repo.FindByEmail(context.Background(), "pounce@uwm.edu")
	if err != nil {
		t.Fatalf("repo.FindByEmail() error = %v\nwant: %v", err, nil)
	}

	if got, want := acct.FullName, "Pounce Panther"; got != want {
		t.Errorf("acct.FullName = %q\nwant: %q", got, want)
	}

	if acct.Verified {
		t.Errorf("acct.Verified = %t\nwant: %t", acct.Verified, false)
	}

	if acct.CodeHash == nil || acct.CodeExpiresAt == nil {
		t.Error("acct code fields are nil, want both populated from the seed")
	}

	if _, err := repo.FindByEmail(context.Background(), "nobody@uwm.edu"); !errors.Is(err, account.ErrNotFound) {
		t.Errorf("repo.FindByEmail() error = %v\nwant: %v", err, account.ErrNotFound)
	}
}

func TestIntegrationRepository_Create(t *testing.T) {
	t.Parallel()

	_, tx := db.Setup(t)

	repo := account.NewRepository(tx)

	created, err := repo.Create(context.Background(), account.CreateParams{
		FullName:      "Bucky Badger",
		Email:         "bucky@uwm.edu",
		PasswordHash:  "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$a2V5",
		CodeHash:      otp.Digest("123456"),
		CodeExpiresAt: time.Now().Add(15 * time.Minute),
	})
	if err != nil {
		t.Fatalf("repo.Create() error = %v\nwant: %v", err, nil)
	}

	if created.ID == "" {
		t.Error("created.ID is empty, want a generated id")
	}

	if created.Verified {
		t.Errorf("created.Verified = %t\nwant: %t", created.Verified, false)
	}
}

func TestIntegrationRepository_SaveVerificationCode(t *testing.T) {
	t.Parallel()

	_, tx := db.Setup(t)

	if _, err := tx.Exec(queryAccountSeed); err != nil {
		t.Fatalf("failed to seed accounts: %v", err)
	}

	repo := account.NewRepository(tx)
	ctx := context.Background()

	newDigest := otp.Digest("654321")
	expiresAt := time.Now().Add(15 * time.Minute)
	if err := repo.SaveVerificationCode(ctx, "3d594650-3436-11e5-bf21-0800200c9a66", newDigest, expiresAt); err != nil {
		t.Fatalf("repo.SaveVerificationCode() error = %v\nwant: %v", err, nil)
	}

	acct, err := repo.FindByEmail(ctx, "pounce@uwm.edu")
	if err != nil {
		t.Fatalf("repo.FindByEmail() error = %v\nwant: %v", err, nil)
	}

	if acct.CodeHash == nil || *acct.CodeHash != newDigest {
		t.Errorf("acct.CodeHash = %v\nwant: %q", acct.CodeHash, newDigest)
	}

	err = repo.SaveVerificationCode(ctx, "f47ac10b-58cc-4372-a567-0e02b2c3d479", newDigest, expiresAt)
	if !errors.Is(err, account.ErrNotFound) {
		t.Errorf("repo.SaveVerificationCode() for missing account error = %v\nwant: %v", err, account.ErrNotFound)
	}
}

func TestIntegrationRepository_MarkVerified(t *testing.T) {
	t.Parallel()

	_, tx := db.Setup(t)

	if _, err := tx.Exec(queryAccountSeed); err != nil {
		t.Fatalf("failed to seed accounts: %v", err)
	}

	repo := account.NewRepository(tx)
	ctx := context.Background()

	if err := repo.MarkVerified(ctx, "3d594650-3436-11e5-bf21-0800200c9a66"); err != nil {
		t.Fatalf("repo.MarkVerified() error = %v\nwant: %v", err, nil)
	}

	acct, err := repo.FindByEmail(ctx, "pounce@uwm.edu")
	if err != nil {
		t.Fatalf("repo.FindByEmail() error = %v\nwant: %v", err, nil)
	}

	if !acct.Verified {
		t.Errorf("acct.Verified = %t\nwant: %t", acct.Verified, true)
	}

	if acct.CodeHash != nil || acct.CodeExpiresAt != nil {
		t.Error("acct code fields were not cleared by MarkVerified")
	}
}
