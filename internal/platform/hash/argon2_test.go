package hash_test

import (
	"strings"
	"testing"

	"github.com/pantherbooks/identity/internal/config"
	"github.com/pantherbooks/identity/internal/platform/hash"
)

func testHasher() *hash.Argon2Hasher {
	opts := &config.Argon2{
		Memory:     65536,
		Iterations: 1,
		Threads:    2,
		SaltLength: 16,
		KeyLength:  32,
	}
	return hash.NewArgon2Hasher(opts, "paminta")
}

func TestArgon2Hasher_Hash(t *testing.T) {
	t.Parallel()

	hasher := testHasher()
	plain := "password123"
	hashed, err := hasher.Hash(plain)
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(hashed, "$")
	wantLen, gotLen := 6, len(parts)
	if gotLen != wantLen {
		t.Fatalf("len(parts) = %d, want: %d", gotLen, wantLen)
	}

	wantAlgo, gotAlgo := "argon2id", parts[1]
	if gotAlgo != wantAlgo {
		t.Errorf("parts[1] = %s, want: %s", gotAlgo, wantAlgo)
	}
}

func TestArgon2Hasher_HashIsSalted(t *testing.T) {
	t.Parallel()

	hasher := testHasher()
	plain := "password123"

	first, err := hasher.Hash(plain)
	if err != nil {
		t.Fatal(err)
	}
	second, err := hasher.Hash(plain)
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Errorf("hasher.Hash(%q) produced identical credentials on two calls", plain)
	}

	if !hasher.Verify(plain, first) {
		t.Errorf("hasher.Verify(%q, first) = false, want: true", plain)
	}
	if !hasher.Verify(plain, second) {
		t.Errorf("hasher.Verify(%q, second) = false, want: true", plain)
	}
}

func TestArgon2Hasher_Verify(t *testing.T) {
	t.Parallel()

	hasher := testHasher()
	plain := "password123"
	hashed, err := hasher.Hash(plain)
	if err != nil {
		t.Fatal(err)
	}

	if !hasher.Verify(plain, hashed) {
		t.Errorf("hasher.Verify(%q, hashed) = false, want: true", plain)
	}

	if hasher.Verify("hunter2hunter2", hashed) {
		t.Error("hasher.Verify with wrong password = true, want: false")
	}
}

func TestArgon2Hasher_VerifyMalformed(t *testing.T) {
	t.Parallel()

	hasher := testHasher()

	var tests = []struct {
		name, hashed string
	}{
		{"Empty", ""},
		{"Garbage", "not-a-credential"},
		{"Wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=2$c2FsdA$aGFzaA"},
		{"Missing parts", "$argon2id$v=19$m=65536,t=1,p=2"},
		{"Bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=2$!!!$aGFzaA"},
		{"Bad key encoding", "$argon2id$v=19$m=65536,t=1,p=2$c2FsdA$!!!"},
		{"Bad params", "$argon2id$v=19$m=abc,t=1,p=2$c2FsdA$aGFzaA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if hasher.Verify("password123", tt.hashed) {
				t.Errorf("hasher.Verify(_, %q) = true, want: false", tt.hashed)
			}
		})
	}
}
