package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

type AwardService struct {
	awards ports.AwardRepository
	films  ports.FilmRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewAwardService(awards ports.AwardRepository, films ports.FilmRepository, audit ports.AuditRecorder, logger zerolog.Logger) *AwardService {
	return &AwardService{awards: awards, films: films, audit: recorderOrNop(audit), logger: logger}
}

func (s *AwardService) GetAll(ctx context.Context) ([]domain.Award, error) {
	return s.awards.FindAll(ctx)
}

func (s *AwardService) GetByID(ctx context.Context, id uint) (*domain.Award, error) {
	award, err := s.awards.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgAwardNotFound)
	}
	return award, nil
}

// Create adds an award to an existing film.
func (s *AwardService) Create(ctx context.Context, input ports.CreateAwardInput, session domain.Session) (*domain.Award, error) {
	if _, err := s.films.FindByID(ctx, input.FilmID); err != nil {
		return nil, notFound(err, msgFilmNotFound)
	}

	award := &domain.Award{Name: input.Name, Year: input.Year, FilmID: input.FilmID}
	if err := s.awards.Create(ctx, award); err != nil {
		return nil, err
	}
	s.audit.Record(auditEvent(domain.AuditCreate, resourceAward, award.ID, session))
	return award, nil
}

func (s *AwardService) DeleteByID(ctx context.Context, id uint, session domain.Session) error {
	if err := requireAdmin(session); err != nil {
		return err
	}
	if err := s.awards.Delete(ctx, id); err != nil {
		return notFound(err, msgAwardNotFound)
	}
	s.audit.Record(auditEvent(domain.AuditDelete, resourceAward, id, session))
	return nil
}
