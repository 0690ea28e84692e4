// Package otp issues and checks the short-lived numeric codes that prove
// email ownership. Codes are hashed with plain SHA-256: unlike passwords they
// live for minutes and the stored digest is not the secret boundary, so a
// slow KDF buys nothing here.
package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

// CodeLength is the fixed width of a verification code.
const CodeLength = 6

var codeSpace = big.NewInt(1_000_000)

// Code is an issued verification code. Plain is delivered out of band and
// never persisted; only Digest is stored.
type Code struct {
	Plain     string
	Digest    string
	ExpiresAt time.Time
}

type Generator struct {
	ttl time.Duration
}

func NewGenerator(ttl time.Duration) *Generator {
	return &Generator{ttl: ttl}
}

// Issue draws a uniformly random code in [0, 1e6), zero-padded to six
// digits, valid for the generator's TTL.
func (g *Generator) Issue() (Code, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return Code{}, fmt.Errorf("draw random code: %w", err)
	}

	plain := fmt.Sprintf("%0*d", CodeLength, n.Int64())
	return Code{
		Plain:     plain,
		Digest:    Digest(plain),
		ExpiresAt: time.Now().Add(g.ttl),
	}, nil
}

// TTL returns the code lifetime.
func (g *Generator) TTL() time.Duration {
	return g.ttl
}

// Digest returns the hex-encoded SHA-256 digest of a code.
func Digest(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// Matches reports whether the submitted code digests to storedDigest.
// Malformed input is rejected before digesting.
func Matches(submitted, storedDigest string) bool {
	if !wellFormed(submitted) {
		return false
	}
	return Digest(submitted) == storedDigest
}

// Expired reports whether a code with the given expiry is past it. A zero
// expiry always reads as expired.
func Expired(expiresAt, now time.Time) bool {
	return !now.Before(expiresAt)
}

func wellFormed(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
