package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

type FilmService struct {
	films     ports.FilmRepository
	persons   ports.PersonRepository
	locations ports.LocationRepository
	awards    ports.AwardRepository
	tx        ports.Transactor
	audit     ports.AuditRecorder
	logger    zerolog.Logger
}

type FilmServiceDeps struct {
	Films      ports.FilmRepository
	Persons    ports.PersonRepository
	Locations  ports.LocationRepository
	Awards     ports.AwardRepository
	Transactor ports.Transactor
	Audit      ports.AuditRecorder
}

func NewFilmService(deps FilmServiceDeps, logger zerolog.Logger) *FilmService {
	return &FilmService{
		films:     deps.Films,
		persons:   deps.Persons,
		locations: deps.Locations,
		awards:    deps.Awards,
		tx:        deps.Transactor,
		audit:     recorderOrNop(deps.Audit),
		logger:    logger,
	}
}

func (s *FilmService) GetAll(ctx context.Context) ([]domain.Film, error) {
	return s.films.FindAll(ctx)
}

// GetByID returns the film with director, actors, awards and locations.
func (s *FilmService) GetByID(ctx context.Context, id uint) (*domain.FilmDetail, error) {
	film, err := s.films.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgFilmNotFound)
	}

	detail := &domain.FilmDetail{Film: *film}
	if film.DirectorID != nil {
		director, err := s.persons.FindByID(ctx, *film.DirectorID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("load director: %w", err)
		}
		detail.Director = director
	}
	if detail.Actors, err = s.films.FindActors(ctx, id); err != nil {
		return nil, fmt.Errorf("load actors: %w", err)
	}
	if detail.Awards, err = s.awards.FindByFilm(ctx, id); err != nil {
		return nil, fmt.Errorf("load awards: %w", err)
	}
	if detail.Locations, err = s.films.FindLocations(ctx, id); err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}
	return detail, nil
}

// Create stores the film together with its actors, awards and locations in
// one transaction. Nothing is written when any part fails.
func (s *FilmService) Create(ctx context.Context, input ports.CreateFilmInput, session domain.Session) (*domain.Film, error) {
	film := &domain.Film{
		Name:       input.Name,
		Year:       input.Year,
		Duration:   input.Duration,
		Genre:      input.Genre,
		Rating:     input.Rating,
		DirectorID: input.DirectorID,
	}
	if session.UserID != 0 {
		addedBy := session.UserID
		film.AddedByUserID = &addedBy
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkDirector(ctx, film.DirectorID); err != nil {
			return err
		}
		if err := s.films.Create(ctx, film); err != nil {
			return err
		}
		if err := s.linkActors(ctx, film.ID, input.Actors); err != nil {
			return err
		}
		if err := s.createAwards(ctx, film.ID, input.Awards); err != nil {
			return err
		}
		return s.linkLocations(ctx, film.ID, input.Locations)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("film_id", film.ID).Uint("by", session.UserID).Msg("film created")
	s.audit.Record(auditEvent(domain.AuditCreate, resourceFilm, film.ID, session))
	return film, nil
}

// UpdateByID changes the given fields. Non-empty actor, award and location
// lists replace the current ones.
func (s *FilmService) UpdateByID(ctx context.Context, id uint, input ports.UpdateFilmInput, session domain.Session) (*domain.Film, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	var film *domain.Film
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		film, err = s.films.FindByID(ctx, id)
		if err != nil {
			return notFound(err, msgFilmNotFound)
		}
		applyFilmUpdate(film, input)

		if err := s.checkDirector(ctx, film.DirectorID); err != nil {
			return err
		}
		if err := s.films.Update(ctx, film); err != nil {
			return err
		}
		if len(input.Actors) > 0 {
			if err := s.films.DeleteActors(ctx, id); err != nil {
				return err
			}
			if err := s.linkActors(ctx, id, input.Actors); err != nil {
				return err
			}
		}
		if len(input.Awards) > 0 {
			if err := s.awards.DeleteByFilm(ctx, id); err != nil {
				return err
			}
			if err := s.createAwards(ctx, id, input.Awards); err != nil {
				return err
			}
		}
		if len(input.Locations) > 0 {
			if err := s.films.DeleteLocations(ctx, id); err != nil {
				return err
			}
			if err := s.linkLocations(ctx, id, input.Locations); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(auditEvent(domain.AuditUpdate, resourceFilm, id, session))
	return film, nil
}

// DeleteByID removes the film with its actor links, awards and location
// links. Persons and locations themselves are kept.
func (s *FilmService) DeleteByID(ctx context.Context, id uint, session domain.Session) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.films.FindByID(ctx, id); err != nil {
			return notFound(err, msgFilmNotFound)
		}
		if err := s.films.DeleteActors(ctx, id); err != nil {
			return err
		}
		if err := s.awards.DeleteByFilm(ctx, id); err != nil {
			return err
		}
		if err := s.films.DeleteLocations(ctx, id); err != nil {
			return err
		}
		if err := s.films.Delete(ctx, id); err != nil {
			return notFound(err, msgFilmNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Uint("film_id", id).Uint("by", session.UserID).Msg("film deleted")
	s.audit.Record(auditEvent(domain.AuditDelete, resourceFilm, id, session))
	return nil
}

func applyFilmUpdate(film *domain.Film, input ports.UpdateFilmInput) {
	if input.Name != nil {
		film.Name = *input.Name
	}
	if input.Year != nil {
		film.Year = *input.Year
	}
	if input.Duration != nil {
		film.Duration = *input.Duration
	}
	if input.Genre != nil {
		film.Genre = *input.Genre
	}
	if input.Rating != nil {
		film.Rating = *input.Rating
	}
	if input.DirectorID != nil {
		film.DirectorID = input.DirectorID
	}
}

func (s *FilmService) checkDirector(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := s.persons.FindByID(ctx, *id); err != nil {
		return notFound(err, msgDirectorNotFound)
	}
	return nil
}

func (s *FilmService) linkActors(ctx context.Context, filmID uint, actors []ports.ActorInput) error {
	for _, a := range actors {
		var personID uint
		switch in := a.(type) {
		case ports.ExistingActorRef:
			if _, err := s.persons.FindByID(ctx, in.PersonID); err != nil {
				return notFound(err, msgActorNotFound)
			}
			personID = in.PersonID
		case ports.NewActorInput:
			p := &domain.Person{
				FirstName: in.FirstName,
				LastName:  in.LastName,
				BirthDate: in.BirthDate,
				Country:   in.Country,
			}
			if err := s.persons.Create(ctx, p); err != nil {
				return err
			}
			personID = p.ID
		default:
			return fmt.Errorf("unsupported actor input %T", in)
		}
		if err := s.films.AddActor(ctx, filmID, personID, a.CreditedRole()); err != nil {
			return err
		}
	}
	return nil
}

func (s *FilmService) createAwards(ctx context.Context, filmID uint, awards []ports.AwardInput) error {
	for _, in := range awards {
		award := &domain.Award{Name: in.Name, Year: in.Year, FilmID: filmID}
		if err := s.awards.Create(ctx, award); err != nil {
			return err
		}
	}
	return nil
}

// linkLocations links locations given by id, or by address. An address that
// is not stored yet is created first.
func (s *FilmService) linkLocations(ctx context.Context, filmID uint, locations []ports.LocationInput) error {
	for _, in := range locations {
		var locationID uint
		switch in := in.(type) {
		case ports.ExistingLocationRef:
			if _, err := s.locations.FindByID(ctx, in.ID); err != nil {
				return notFound(err, msgLocationMissing)
			}
			locationID = in.ID
		case ports.LocationAddress:
			loc, err := s.locations.FindByAddress(ctx, in.Street, in.City, in.Country)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				loc = &domain.Location{Street: in.Street, City: in.City, Country: in.Country}
				if err := s.locations.Create(ctx, loc); err != nil {
					return err
				}
			case err != nil:
				return err
			}
			locationID = loc.ID
		default:
			return fmt.Errorf("unsupported location input %T", in)
		}
		if err := s.films.AddLocation(ctx, filmID, locationID); err != nil {
			return err
		}
	}
	return nil
}
