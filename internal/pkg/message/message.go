// Package message holds the user-facing strings shared across handlers.
package message

const (
	InvalidInput       = "Invalid input."
	InvalidCredentials = "Invalid email or password."
	EnvErrFmt          = "environment variable is not set: %s"

	RegisterSuccess = "Account created. Check your email for a verification code."
	CodeResent      = "A new verification code was sent to your email."
	VerifySuccess   = "Email verified. You can now log in."
	LoginSuccess    = "Logged in."
	DeliveryFailed  = "Could not send the verification email. Please try again."
	NeedsVerify     = "Email not verified. A new verification code was sent to your email."
)
