package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

type UserService struct {
	users  ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *UserService {
	return &UserService{users: users, audit: recorderOrNop(audit), logger: logger}
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgUserNotFound)
	}
	return user, nil
}

// UpdateByID changes the name and/or email of a user. Only the user
// themself or an admin may do this.
func (s *UserService) UpdateByID(ctx context.Context, id uint, input ports.UpdateUserInput, session domain.Session) (*domain.User, error) {
	if err := checkOwnerOrAdmin(id, session); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgUserNotFound)
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(auditEvent(domain.AuditUpdate, resourceUser, id, session))
	return user, nil
}

func (s *UserService) DeleteByID(ctx context.Context, id uint, session domain.Session) error {
	if err := checkOwnerOrAdmin(id, session); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return notFound(err, msgUserNotFound)
	}

	s.logger.Info().Uint("user_id", id).Uint("by", session.UserID).Msg("user deleted")
	s.audit.Record(auditEvent(domain.AuditDelete, resourceUser, id, session))
	return nil
}

func checkOwnerOrAdmin(id uint, session domain.Session) error {
	if session.UserID != id && !session.IsAdmin() {
		return domain.Forbidden(msgNotAllowedUser)
	}
	return nil
}
