package account

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ferdiebergado/gopherkit/http/response"
	"github.com/pantherbooks/identity/internal/pkg/message"
	"github.com/pantherbooks/identity/internal/pkg/web"
)

// AccountService is the produced interface of the identity core; the HTTP
// layer only maps its tagged results to status codes.
type AccountService interface {
	Register(ctx context.Context, params RegisterParams) (RegisterResult, error)
	VerifyEmail(ctx context.Context, params VerifyEmailParams) error
	Login(ctx context.Context, params LoginParams) (Identity, error)
}

type Handler struct {
	svc AccountService
}

func NewHandler(svc AccountService) *Handler {
	return &Handler{svc: svc}
}

const maskChar = "*"

type RegisterRequest struct {
	FullName string `json:"full_name,omitempty" validate:"required"`
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required,min=8"`
}

func (r RegisterRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("full_name", maskChar),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type RegisterResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	params := RegisterParams{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}
	res, err := h.svc.Register(r.Context(), params)
	if err != nil {
		h.respondError(w, err)
		return
	}

	if res.Resent {
		msg := message.CodeResent
		web.OK[struct{}](w, http.StatusAccepted, &msg, nil)
		return
	}

	msg := message.RegisterSuccess
	data := &RegisterResponse{
		ID:        res.Account.ID,
		Email:     res.Account.Email,
		CreatedAt: res.Account.CreatedAt,
		UpdatedAt: res.Account.UpdatedAt,
	}
	web.OK(w, http.StatusCreated, &msg, data)
}

type VerifyEmailRequest struct {
	Email string `json:"email,omitempty" validate:"required,email"`
	Code  string `json:"code,omitempty" validate:"required,len=6,numeric"`
}

func (r VerifyEmailRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("code", maskChar),
	)
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[VerifyEmailRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	params := VerifyEmailParams{Email: req.Email, Code: req.Code}
	if err := h.svc.VerifyEmail(r.Context(), params); err != nil {
		h.respondError(w, err)
		return
	}

	msg := message.VerifySuccess
	web.OK[struct{}](w, http.StatusOK, &msg, nil)
}

type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required"`
}

func (r LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

// verificationRequiredResponse tells the client to redirect into the
// verification flow instead of treating the login as plainly rejected.
type verificationRequiredResponse struct {
	Message              string `json:"message"`
	VerificationRequired bool   `json:"verification_required"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	params := LoginParams{Email: req.Email, Password: req.Password}
	identity, err := h.svc.Login(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrVerificationRequired) {
			slog.Info("login blocked, verification required")
			response.JSON(w, http.StatusForbidden, &verificationRequiredResponse{
				Message:              message.NeedsVerify,
				VerificationRequired: true,
			})
			return
		}

		h.respondError(w, err)
		return
	}

	msg := message.LoginSuccess
	web.OK(w, http.StatusOK, &msg, &identity)
}

// respondError maps the service error kinds to status codes. Unknown email
// and wrong password share one message on purpose.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var valErr *ValidationError
	switch {
	case errors.As(err, &valErr):
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, valErr.Fields)
	case errors.Is(err, ErrAlreadyRegistered):
		web.Fail(w, http.StatusConflict, err, "This email is already registered.", nil)
	case errors.Is(err, ErrDeliveryFailed):
		web.Fail(w, http.StatusBadGateway, err, message.DeliveryFailed, nil)
	case errors.Is(err, ErrNotFound):
		web.Fail(w, http.StatusNotFound, err, "No account found for that email.", nil)
	case errors.Is(err, ErrNoActiveCode):
		web.Fail(w, http.StatusConflict, err, "No active verification code. Register again to request one.", nil)
	case errors.Is(err, ErrCodeExpired):
		web.Fail(w, http.StatusGone, err, "Verification code expired. Register again to request a new one.", nil)
	case errors.Is(err, ErrInvalidCode):
		web.Fail(w, http.StatusUnauthorized, err, "Invalid verification code.", nil)
	case errors.Is(err, ErrInvalidCredentials):
		web.Fail(w, http.StatusUnauthorized, err, message.InvalidCredentials, nil)
	default:
		web.Fail(w, http.StatusInternalServerError, err, "Something went wrong.", nil)
	}
}
