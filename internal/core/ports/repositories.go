package ports

import (
	"context"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

// Repositories return domain.ErrNotFound when a lookup by id or key matches no row.

type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uint) error
}

type PersonRepository interface {
	FindAll(ctx context.Context) ([]domain.Person, error)
	FindByID(ctx context.Context, id uint) (*domain.Person, error)
	FindRoles(ctx context.Context, id uint) ([]domain.PersonRole, error)
	CountDirected(ctx context.Context, id uint) (int64, error)
	Create(ctx context.Context, person *domain.Person) error
	// Delete removes the person and its acting credits.
	Delete(ctx context.Context, id uint) error
}

type LocationRepository interface {
	FindAll(ctx context.Context) ([]domain.Location, error)
	FindByID(ctx context.Context, id uint) (*domain.Location, error)
	FindByAddress(ctx context.Context, street, city, country string) (*domain.Location, error)
	FindFilms(ctx context.Context, id uint) ([]domain.FilmRef, error)
	CountFilmLinks(ctx context.Context, id uint) (int64, error)
	Create(ctx context.Context, location *domain.Location) error
	Delete(ctx context.Context, id uint) error
}

type AwardRepository interface {
	FindAll(ctx context.Context) ([]domain.Award, error)
	FindByID(ctx context.Context, id uint) (*domain.Award, error)
	FindByFilm(ctx context.Context, filmID uint) ([]domain.Award, error)
	Create(ctx context.Context, award *domain.Award) error
	Delete(ctx context.Context, id uint) error
	DeleteByFilm(ctx context.Context, filmID uint) error
}

type FilmRepository interface {
	FindAll(ctx context.Context) ([]domain.Film, error)
	FindByID(ctx context.Context, id uint) (*domain.Film, error)
	FindActors(ctx context.Context, filmID uint) ([]domain.Actor, error)
	FindLocations(ctx context.Context, filmID uint) ([]domain.Location, error)
	Create(ctx context.Context, film *domain.Film) error
	Update(ctx context.Context, film *domain.Film) error
	Delete(ctx context.Context, id uint) error
	AddActor(ctx context.Context, filmID, personID uint, role string) error
	DeleteActors(ctx context.Context, filmID uint) error
	AddLocation(ctx context.Context, filmID, locationID uint) error
	DeleteLocations(ctx context.Context, filmID uint) error
}

// Transactor runs fn inside one database transaction. Repositories called
// with the ctx passed to fn join that transaction. Any error returned by fn
// rolls everything back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AuditRecorder accepts audit events without blocking the caller.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditSink persists audit events.
type AuditSink interface {
	Write(ctx context.Context, event domain.AuditEvent) error
}

// LoginLimiter counts attempts per key inside a fixed window.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter int, err error)
}
