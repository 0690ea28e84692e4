package app

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"github.com/pantherbooks/identity/internal/config"
	"github.com/pantherbooks/identity/internal/pkg/message"
	"github.com/pantherbooks/identity/internal/platform/email"
	"github.com/pantherbooks/identity/internal/platform/hash"
	"github.com/pantherbooks/identity/internal/platform/otp"
	"github.com/pantherbooks/identity/internal/platform/router"
	"github.com/pantherbooks/identity/internal/platform/validation"
)

type Provider struct {
	DB        *sql.DB
	Hasher    hash.Hasher
	Codes     *otp.Generator
	Mailer    email.Mailer
	Validator validation.Validator
	Router    router.Router
}

func newProvider(cfg *config.Config, securityKey string, dbConn *sql.DB) (*Provider, error) {
	mailer, err := createMailer(cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("create mailer: %w", err)
	}

	return &Provider{
		DB:        dbConn,
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, securityKey),
		Codes:     otp.NewGenerator(cfg.Account.CodeTTL.Duration),
		Mailer:    mailer,
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
	}, nil
}

func createMailer(opts *config.Email) (*email.SMTPMailer, error) {
	const (
		envHost = "SMTP_HOST"
		envPort = "SMTP_PORT"
		envUser = "SMTP_USER"
		envPass = "SMTP_PASS"
	)

	smtpHost, err := getEnv(envHost)
	if err != nil {
		return nil, err
	}

	smtpPortStr, err := getEnv(envPort)
	if err != nil {
		return nil, err
	}

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		return nil, fmt.Errorf("parse %s %q: %w", envPort, smtpPortStr, err)
	}

	smtpUser, err := getEnv(envUser)
	if err != nil {
		return nil, err
	}

	smtpPass, err := getEnv(envPass)
	if err != nil {
		return nil, err
	}

	smtpCfg := &email.SMTPConfig{
		Host:     smtpHost,
		Port:     smtpPort,
		User:     smtpUser,
		Password: smtpPass,
	}

	return email.NewSMTPMailer(smtpCfg, opts.Sender), nil
}

func getEnv(envVar string) (string, error) {
	val, ok := os.LookupEnv(envVar)
	if !ok {
		return "", fmt.Errorf(message.EnvErrFmt, envVar)
	}
	return val, nil
}
