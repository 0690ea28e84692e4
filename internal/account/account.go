// Package account is the credential-and-identity core: registration gated to
// an institutional email domain, email ownership proven with a one-time
// code, and login that blocks unverified accounts.
package account

import (
	"github.com/pantherbooks/identity/internal/config"
	"github.com/pantherbooks/identity/internal/platform/db"
	"github.com/pantherbooks/identity/internal/platform/email"
	"github.com/pantherbooks/identity/internal/platform/hash"
	"github.com/pantherbooks/identity/internal/platform/otp"
)

type Module struct {
	repo    *SQLRepository
	svc     *Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() *Service {
	return m.svc
}

func NewModule(dbExec db.Executor, hasher hash.Hasher, codes *otp.Generator, mailer email.Mailer, cfg *config.Account) *Module {
	repo := NewRepository(dbExec)
	svc := NewService(repo, hasher, codes, mailer, cfg)
	handler := NewHandler(svc)
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: handler,
	}
}
