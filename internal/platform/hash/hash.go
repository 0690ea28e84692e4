// Package hash provides one-way password hashing.
package hash

// Hasher is the credential codec: Hash derives an irreversible, salted
// credential from a password; Verify checks a password against one.
type Hasher interface {
	Hash(plain string) (string, error)

	// Verify reports whether plain matches the encoded credential.
	// A malformed or corrupt credential verifies as false, never as an error.
	Verify(plain, hashed string) bool
}
