package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

// dummyPassword is hashed once at startup so that logins for unknown emails
// still pay for one password verification.
const dummyPassword = "not-a-real-password"

// AuthService implements registration and login.
type AuthService struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	tokens    ports.TokenIssuer
	audit     ports.AuditRecorder
	logger    zerolog.Logger
	dummyHash string
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, audit ports.AuditRecorder, logger zerolog.Logger) (*AuthService, error) {
	dummy, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		audit:     recorderOrNop(audit),
		logger:    logger,
		dummyHash: dummy,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	encoded := s.dummyHash
	if user != nil {
		encoded = user.PasswordHash
	}
	ok, err := s.hasher.Verify(password, encoded)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("stored password hash is malformed")
		ok = false
	}
	if user == nil || !ok {
		return "", domain.Unauthorized(msgCredentialsMismatch).Wrap(domain.ErrInvalidCredentials)
	}

	return s.tokens.Issue(user.ID, user.Roles)
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Roles:        []string{domain.RoleUser},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user registered")
	s.audit.Record(domain.AuditEvent{Action: domain.AuditCreate, Resource: resourceUser, ResourceID: user.ID, ActorID: user.ID})

	return s.tokens.Issue(user.ID, user.Roles)
}
