package ports

import "github.com/filmcatalog/webservices-film/internal/core/domain"

type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify returns (false, nil) on a mismatch and an error only for a malformed hash.
	Verify(plain, encoded string) (bool, error)
}

type TokenIssuer interface {
	Issue(userID uint, roles []string) (string, error)
}

// TokenVerifier returns domain.ErrInvalidToken for every rejected token.
type TokenVerifier interface {
	Verify(raw string) (domain.Session, error)
}
