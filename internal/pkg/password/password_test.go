package password

import (
	"errors"
	"strings"
	"testing"
)

var testParams = Params{HashLength: 32, TimeCost: 1, MemoryCost: 64, Parallelism: 1, SaltLength: 16}

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(testParams)

	encoded, err := h.Hash("12345678abcd")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=64,t=1,p=1$") {
		t.Fatalf("unexpected encoding: %s", encoded)
	}

	ok, err := h.Verify("12345678abcd", encoded)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = h.Verify("wrong-password", encoded)
	if err != nil {
		t.Fatalf("mismatch must not error, got %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch")
	}
}

func TestHasher_SaltIsRandom(t *testing.T) {
	h := NewHasher(testParams)

	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	if a == b {
		t.Fatalf("two hashes of the same password must differ")
	}
}

func TestHasher_VerifyUsesEncodedParams(t *testing.T) {
	encoded, err := NewHasher(testParams).Hash("secret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	other := NewHasher(Params{HashLength: 16, TimeCost: 2, MemoryCost: 128, Parallelism: 2, SaltLength: 8})
	ok, err := other.Verify("secret", encoded)
	if err != nil || !ok {
		t.Fatalf("expected match across hasher params, got ok=%v err=%v", ok, err)
	}
}

func TestHasher_VerifyMalformed(t *testing.T) {
	h := NewHasher(testParams)

	cases := []string{
		"",
		"plain-text",
		"$bcrypt$v=19$m=64,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=64,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=64,t=1,p=1$!!!$aGFzaA",
		"$argon2id$v=19$m=64,t=1,p=1$c2FsdA$",
	}
	for _, encoded := range cases {
		ok, err := h.Verify("secret", encoded)
		if !errors.Is(err, ErrMalformedHash) {
			t.Errorf("%q: expected ErrMalformedHash, got %v", encoded, err)
		}
		if ok {
			t.Errorf("%q: malformed hash must not verify", encoded)
		}
	}
}
