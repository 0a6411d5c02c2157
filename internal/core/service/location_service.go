package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

const msgLocationInUse = "This location is still linked to a film"

type LocationService struct {
	locations ports.LocationRepository
	tx        ports.Transactor
	audit     ports.AuditRecorder
	logger    zerolog.Logger
}

func NewLocationService(locations ports.LocationRepository, tx ports.Transactor, audit ports.AuditRecorder, logger zerolog.Logger) *LocationService {
	return &LocationService{locations: locations, tx: tx, audit: recorderOrNop(audit), logger: logger}
}

func (s *LocationService) GetAll(ctx context.Context) ([]domain.Location, error) {
	return s.locations.FindAll(ctx)
}

func (s *LocationService) GetByID(ctx context.Context, id uint) (*domain.LocationDetail, error) {
	location, err := s.locations.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgLocationNotFound)
	}
	films, err := s.locations.FindFilms(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load films: %w", err)
	}
	return &domain.LocationDetail{Location: *location, Films: films}, nil
}

// Create stores a new location. The (street, city, country) triple must be unique.
func (s *LocationService) Create(ctx context.Context, input ports.CreateLocationInput, session domain.Session) (*domain.Location, error) {
	location := &domain.Location{
		Street:  input.Street,
		City:    input.City,
		Country: input.Country,
		Photo:   input.Photo,
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, err
	}
	s.audit.Record(auditEvent(domain.AuditCreate, resourceLocation, location.ID, session))
	return location, nil
}

func (s *LocationService) DeleteByID(ctx context.Context, id uint, session domain.Session) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		links, err := s.locations.CountFilmLinks(ctx, id)
		if err != nil {
			return err
		}
		if links > 0 {
			return domain.Conflict(msgLocationInUse)
		}
		if err := s.locations.Delete(ctx, id); err != nil {
			return notFound(err, msgLocationNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(auditEvent(domain.AuditDelete, resourceLocation, id, session))
	return nil
}
