// Package email delivers outbound mail over SMTP.
package email

// Mailer sends a plain-text message. Delivery is attempted once per call;
// retry policy belongs to the caller.
type Mailer interface {
	SendPlain(to []string, subject, body string) error
}
