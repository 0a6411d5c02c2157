package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

const msgPersonIsDirector = "This person is still the director of a film"

type PersonService struct {
	persons ports.PersonRepository
	tx      ports.Transactor
	audit   ports.AuditRecorder
	logger  zerolog.Logger
}

func NewPersonService(persons ports.PersonRepository, tx ports.Transactor, audit ports.AuditRecorder, logger zerolog.Logger) *PersonService {
	return &PersonService{persons: persons, tx: tx, audit: recorderOrNop(audit), logger: logger}
}

func (s *PersonService) GetAll(ctx context.Context) ([]domain.Person, error) {
	return s.persons.FindAll(ctx)
}

// GetByID returns the person with every role they played.
func (s *PersonService) GetByID(ctx context.Context, id uint) (*domain.PersonDetail, error) {
	person, err := s.persons.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgPersonNotFound)
	}
	roles, err := s.persons.FindRoles(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	return &domain.PersonDetail{Person: *person, Roles: roles}, nil
}

func (s *PersonService) Create(ctx context.Context, input ports.CreatePersonInput, session domain.Session) (*domain.Person, error) {
	person := &domain.Person{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: input.BirthDate,
		Country:   input.Country,
	}
	if err := s.persons.Create(ctx, person); err != nil {
		return nil, err
	}
	s.audit.Record(auditEvent(domain.AuditCreate, resourcePerson, person.ID, session))
	return person, nil
}

// DeleteByID removes the person and their acting credits. A person who
// still directs a film cannot be deleted.
func (s *PersonService) DeleteByID(ctx context.Context, id uint, session domain.Session) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		directed, err := s.persons.CountDirected(ctx, id)
		if err != nil {
			return err
		}
		if directed > 0 {
			return domain.Conflict(msgPersonIsDirector)
		}
		if err := s.persons.Delete(ctx, id); err != nil {
			return notFound(err, msgPersonNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(auditEvent(domain.AuditDelete, resourcePerson, id, session))
	return nil
}
