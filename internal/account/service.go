package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pantherbooks/identity/internal/config"
	"github.com/pantherbooks/identity/internal/platform/email"
	"github.com/pantherbooks/identity/internal/platform/hash"
	"github.com/pantherbooks/identity/internal/platform/otp"
)

var (
	// ErrAlreadyRegistered is returned when registering an email that
	// belongs to a verified account.
	ErrAlreadyRegistered = errors.New("account service: email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so callers cannot probe which addresses are registered.
	ErrInvalidCredentials = errors.New("account service: invalid credentials")

	// ErrVerificationRequired is returned on login with valid shape but an
	// unverified account; a fresh code has already been issued and sent.
	ErrVerificationRequired = errors.New("account service: email verification required")

	ErrNoActiveCode = errors.New("account service: no active verification code")
	ErrCodeExpired  = errors.New("account service: verification code expired")
	ErrInvalidCode  = errors.New("account service: invalid verification code")

	// ErrDeliveryFailed means the account state was written but the code
	// email could not be sent; registering or logging in again resends.
	ErrDeliveryFailed = errors.New("account service: verification email delivery failed")
)

// ValidationError reports malformed or missing input. Nothing is mutated
// when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "account service: invalid input"
}

type Service struct {
	repo   Repository
	hasher hash.Hasher
	codes  *otp.Generator
	mailer email.Mailer
	cfg    *config.Account
}

func NewService(repo Repository, hasher hash.Hasher, codes *otp.Generator, mailer email.Mailer, cfg *config.Account) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		codes:  codes,
		mailer: mailer,
		cfg:    cfg,
	}
}

type RegisterParams struct {
	FullName string
	Email    string
	Password string
}

func (p RegisterParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("full_name", "*"),
		slog.String("email", "*"),
		slog.String("password", "*"),
	)
}

// RegisterResult carries the outcome of a registration: a freshly created
// account, or Resent when an unverified account was issued a new code.
type RegisterResult struct {
	Account Account
	Resent  bool
}

// Register creates a pending account for a new institutional email, or
// re-issues the verification code when an unverified account already exists.
// The code row is written before the email send is attempted.
func (s *Service) Register(ctx context.Context, params RegisterParams) (RegisterResult, error) {
	res := RegisterResult{}
	if err := s.validateRegister(&params); err != nil {
		return res, err
	}

	addr := NormalizeEmail(params.Email)
	existing, err := s.repo.FindByEmail(ctx, addr)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return res, fmt.Errorf("find account by email: %w", err)
	}

	if existing != nil {
		if existing.Verified {
			return res, ErrAlreadyRegistered
		}
		return s.resendCode(ctx, existing)
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return res, fmt.Errorf("hash password: %w", err)
	}

	code, err := s.codes.Issue()
	if err != nil {
		return res, fmt.Errorf("issue verification code: %w", err)
	}

	created, err := s.repo.Create(ctx, CreateParams{
		FullName:      strings.TrimSpace(params.FullName),
		Email:         addr,
		PasswordHash:  passwordHash,
		CodeHash:      code.Digest,
		CodeExpiresAt: code.ExpiresAt,
	})
	if err != nil {
		return res, fmt.Errorf("create account: %w", err)
	}

	if err := s.sendCode(created.Email, code.Plain); err != nil {
		return res, err
	}

	res.Account = created
	return res, nil
}

// resendCode overwrites the outstanding code of an unverified account,
// implicitly invalidating the previous one. No new row is created.
func (s *Service) resendCode(ctx context.Context, existing *Account) (RegisterResult, error) {
	res := RegisterResult{}
	code, err := s.codes.Issue()
	if err != nil {
		return res, fmt.Errorf("issue verification code: %w", err)
	}

	if err := s.repo.SaveVerificationCode(ctx, existing.ID, code.Digest, code.ExpiresAt); err != nil {
		return res, fmt.Errorf("save verification code: %w", err)
	}

	if err := s.sendCode(existing.Email, code.Plain); err != nil {
		return res, err
	}

	res.Account = *existing
	res.Resent = true
	return res, nil
}

type VerifyEmailParams struct {
	Email string
	Code  string
}

func (p VerifyEmailParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", "*"),
		slog.String("code", "*"),
	)
}

// VerifyEmail consumes a code to promote a pending account to verified.
// Verifying an already verified account succeeds without error.
func (s *Service) VerifyEmail(ctx context.Context, params VerifyEmailParams) error {
	if err := s.validateVerifyEmail(&params); err != nil {
		return err
	}

	acct, err := s.repo.FindByEmail(ctx, NormalizeEmail(params.Email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find account by email: %w", err)
	}

	if acct.Verified {
		return nil
	}

	if acct.CodeHash == nil || acct.CodeExpiresAt == nil {
		return ErrNoActiveCode
	}

	if otp.Expired(*acct.CodeExpiresAt, time.Now()) {
		return ErrCodeExpired
	}

	if !otp.Matches(params.Code, *acct.CodeHash) {
		return ErrInvalidCode
	}

	if err := s.repo.MarkVerified(ctx, acct.ID); err != nil {
		return fmt.Errorf("mark account verified: %w", err)
	}

	return nil
}

type LoginParams struct {
	Email    string
	Password string
}

func (p LoginParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", "*"),
		slog.String("password", "*"),
	)
}

// Login validates credentials and verification state. An unverified account
// gets a fresh code persisted and emailed before the call fails with
// ErrVerificationRequired; the password is not checked on that path.
func (s *Service) Login(ctx context.Context, params LoginParams) (Identity, error) {
	if err := s.validateLogin(&params); err != nil {
		return Identity{}, err
	}

	acct, err := s.repo.FindByEmail(ctx, NormalizeEmail(params.Email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, fmt.Errorf("find account by email: %w", err)
	}

	if !acct.Verified {
		if _, err := s.resendCode(ctx, acct); err != nil {
			return Identity{}, err
		}
		return Identity{}, ErrVerificationRequired
	}

	if !s.hasher.Verify(params.Password, acct.PasswordHash) {
		return Identity{}, ErrInvalidCredentials
	}

	return acct.Identity(), nil
}

const codeEmailSubject = "Your Panther Books verification code"

func (s *Service) sendCode(addr, code string) error {
	body := fmt.Sprintf(
		"Your verification code is %s.\r\n\r\nIt expires in %d minutes. If you did not request this, you can ignore this email.",
		code, int(s.codes.TTL().Minutes()),
	)
	if err := s.mailer.SendPlain([]string{addr}, codeEmailSubject, body); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

func (s *Service) validateRegister(params *RegisterParams) error {
	fields := map[string]string{}
	requireField(fields, "full_name", params.FullName)
	requireField(fields, "email", params.Email)
	requireField(fields, "password", params.Password)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	if err := s.checkDomain(params.Email); err != nil {
		return err
	}

	if len(params.Password) < s.cfg.MinPasswordLen {
		return &ValidationError{Fields: map[string]string{
			"password": fmt.Sprintf("password must be at least %d characters long", s.cfg.MinPasswordLen),
		}}
	}

	return nil
}

func (s *Service) validateVerifyEmail(params *VerifyEmailParams) error {
	fields := map[string]string{}
	requireField(fields, "email", params.Email)
	requireField(fields, "code", params.Code)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	if err := s.checkDomain(params.Email); err != nil {
		return err
	}

	if len(params.Code) != otp.CodeLength {
		return &ValidationError{Fields: map[string]string{
			"code": fmt.Sprintf("code must be exactly %d digits", otp.CodeLength),
		}}
	}

	return nil
}

func (s *Service) validateLogin(params *LoginParams) error {
	fields := map[string]string{}
	requireField(fields, "email", params.Email)
	requireField(fields, "password", params.Password)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return s.checkDomain(params.Email)
}

func (s *Service) checkDomain(addr string) error {
	if !strings.HasSuffix(NormalizeEmail(addr), s.cfg.EmailDomain) {
		return &ValidationError{Fields: map[string]string{
			"email": fmt.Sprintf("email must end with %s", s.cfg.EmailDomain),
		}}
	}
	return nil
}

func requireField(fields map[string]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		fields[name] = name + " is required"
	}
}
