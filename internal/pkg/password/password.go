// Package password hashes and verifies passwords with argon2id.
//
// Hashes are stored in the PHC string format:
//
//	$argon2id$v=19$m=131072,t=6,p=1$<salt>$<hash>
//
// Verification reads the cost parameters from the encoded hash, so changing
// Params only affects newly created hashes.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned by Verify when the encoded hash cannot be parsed.
var ErrMalformedHash = errors.New("password: malformed hash")

// Params are the argon2id cost parameters. MemoryCost is in KiB.
type Params struct {
	HashLength  uint32
	TimeCost    uint32
	MemoryCost  uint32
	Parallelism uint8
	SaltLength  uint32
}

// DefaultParams: 32 byte hash, time cost 6, 128 MiB memory.
var DefaultParams = Params{
	HashLength:  32,
	TimeCost:    6,
	MemoryCost:  1 << 17,
	Parallelism: 1,
	SaltLength:  16,
}

type Hasher struct {
	params Params
}

// NewHasher returns a Hasher; zero fields in p fall back to DefaultParams.
func NewHasher(p Params) *Hasher {
	if p.HashLength == 0 {
		p.HashLength = DefaultParams.HashLength
	}
	if p.TimeCost == 0 {
		p.TimeCost = DefaultParams.TimeCost
	}
	if p.MemoryCost == 0 {
		p.MemoryCost = DefaultParams.MemoryCost
	}
	if p.Parallelism == 0 {
		p.Parallelism = DefaultParams.Parallelism
	}
	if p.SaltLength == 0 {
		p.SaltLength = DefaultParams.SaltLength
	}
	return &Hasher{params: p}
}

// Hash derives an argon2id hash of plain with a fresh random salt.
func (h *Hasher) Hash(plain string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("password: read salt: %w", err)
	}

	key := argon2.IDKey([]byte(plain), salt, h.params.TimeCost, h.params.MemoryCost, h.params.Parallelism, h.params.HashLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.MemoryCost,
		h.params.TimeCost,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether plain matches encoded. A mismatch is (false, nil);
// an error is only returned for a hash that cannot be decoded.
func (h *Hasher) Verify(plain, encoded string) (bool, error) {
	p, salt, key, err := decode(encoded)
	if err != nil {
		return false, err
	}

	other := argon2.IDKey([]byte(plain), salt, p.TimeCost, p.MemoryCost, p.Parallelism, p.HashLength)
	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func decode(encoded string) (Params, []byte, []byte, error) {
	var p Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return p, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, ErrMalformedHash
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemoryCost, &p.TimeCost, &p.Parallelism); err != nil {
		return p, nil, nil, ErrMalformedHash
	}
	if p.MemoryCost == 0 || p.TimeCost == 0 || p.Parallelism == 0 {
		return p, nil, nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return p, nil, nil, ErrMalformedHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, ErrMalformedHash
	}

	p.SaltLength = uint32(len(salt))
	p.HashLength = uint32(len(key))
	return p, salt, key, nil
}
