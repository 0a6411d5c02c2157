// Package token issues and verifies the HS256 JWTs used as session tokens.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

// Claims is the JWT payload: the registered claims plus the user's roles.
// The subject holds the user id.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

type Config struct {
	Secret     string
	Issuer     string
	Audience   string
	Expiration time.Duration
}

type Manager struct {
	secret     []byte
	issuer     string
	audience   string
	expiration time.Duration
	now        func() time.Time
}

func NewManager(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token: secret must not be empty")
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = time.Hour
	}
	return &Manager{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		expiration: cfg.Expiration,
		now:        time.Now,
	}, nil
}

// Issue signs a token for userID carrying roles.
func (m *Manager) Issue(userID uint, roles []string) (string, error) {
	now := m.now()
	claims := Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm, issuer, audience and expiry. Every
// failure is reported as domain.ErrInvalidToken.
func (m *Manager) Verify(raw string) (domain.Session, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return domain.Session{}, domain.ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return domain.Session{}, domain.ErrInvalidToken
	}

	return domain.Session{
		UserID:    uint(id),
		Roles:     claims.Roles,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
