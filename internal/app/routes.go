package app

import (
	"github.com/pantherbooks/identity/internal/account"
	"github.com/pantherbooks/identity/internal/middleware"
	"github.com/pantherbooks/identity/internal/platform/router"
	"github.com/pantherbooks/identity/internal/platform/validation"
)

func mountAccountRoutes(r router.Router, handler *account.Handler, validator validation.Validator, maxBodySize int64) {
	r.Group("/api", func(gr router.Router) {
		gr.Post("/register", handler.Register,
			middleware.DecodePayload[account.RegisterRequest](maxBodySize),
			middleware.ValidateInput[account.RegisterRequest](validator))
		gr.Post("/verify-email", handler.VerifyEmail,
			middleware.DecodePayload[account.VerifyEmailRequest](maxBodySize),
			middleware.ValidateInput[account.VerifyEmailRequest](validator))
		gr.Post("/login", handler.Login,
			middleware.DecodePayload[account.LoginRequest](maxBodySize),
			middleware.ValidateInput[account.LoginRequest](validator))
	})
}
