package account

import (
	"context"
	"errors"
	"time"
)

type StubService struct {
	RegisterFunc    func(ctx context.Context, params RegisterParams) (RegisterResult, error)
	VerifyEmailFunc func(ctx context.Context, params VerifyEmailParams) error
	LoginFunc       func(ctx context.Context, params LoginParams) (Identity, error)
}

var _ AccountService = (*StubService)(nil)

func (s *StubService) Register(ctx context.Context, params RegisterParams) (RegisterResult, error) {
	if s.RegisterFunc == nil {
		return RegisterResult{}, errors.New("Register not implemented by stub")
	}
	return s.RegisterFunc(ctx, params)
}

func (s *StubService) VerifyEmail(ctx context.Context, params VerifyEmailParams) error {
	if s.VerifyEmailFunc == nil {
		return errors.New("VerifyEmail not implemented by stub")
	}
	return s.VerifyEmailFunc(ctx, params)
}

func (s *StubService) Login(ctx context.Context, params LoginParams) (Identity, error) {
	if s.LoginFunc == nil {
		return Identity{}, errors.New("Login not implemented by stub")
	}
	return s.LoginFunc(ctx, params)
}

type StubRepository struct {
	FindByEmailFunc          func(ctx context.Context, email string) (*Account, error)
	CreateFunc               func(ctx context.Context, params CreateParams) (Account, error)
	SaveVerificationCodeFunc func(ctx context.Context, accountID, codeHash string, expiresAt time.Time) error
	MarkVerifiedFunc         func(ctx context.Context, accountID string) error
}

var _ Repository = (*StubRepository)(nil)

func (r *StubRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	if r.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail not implemented by stub")
	}
	return r.FindByEmailFunc(ctx, email)
}

func (r *StubRepository) Create(ctx context.Context, params CreateParams) (Account, error) {
	if r.CreateFunc == nil {
		return Account{}, errors.New("Create not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepository) SaveVerificationCode(ctx context.Context, accountID, codeHash string, expiresAt time.Time) error {
	if r.SaveVerificationCodeFunc == nil {
		return errors.New("SaveVerificationCode not implemented by stub")
	}
	return r.SaveVerificationCodeFunc(ctx, accountID, codeHash, expiresAt)
}

func (r *StubRepository) MarkVerified(ctx context.Context, accountID string) error {
	if r.MarkVerifiedFunc == nil {
		return errors.New("MarkVerified not implemented by stub")
	}
	return r.MarkVerifiedFunc(ctx, accountID)
}
