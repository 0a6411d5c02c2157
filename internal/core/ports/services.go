package ports

import (
	"context"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, input RegisterInput) (string, error)
}

type UserService interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	UpdateByID(ctx context.Context, id uint, input UpdateUserInput, session domain.Session) (*domain.User, error)
	DeleteByID(ctx context.Context, id uint, session domain.Session) error
}

type FilmService interface {
	GetAll(ctx context.Context) ([]domain.Film, error)
	GetByID(ctx context.Context, id uint) (*domain.FilmDetail, error)
	Create(ctx context.Context, input CreateFilmInput, session domain.Session) (*domain.Film, error)
	UpdateByID(ctx context.Context, id uint, input UpdateFilmInput, session domain.Session) (*domain.Film, error)
	DeleteByID(ctx context.Context, id uint, session domain.Session) error
}

type PersonService interface {
	GetAll(ctx context.Context) ([]domain.Person, error)
	GetByID(ctx context.Context, id uint) (*domain.PersonDetail, error)
	Create(ctx context.Context, input CreatePersonInput, session domain.Session) (*domain.Person, error)
	DeleteByID(ctx context.Context, id uint, session domain.Session) error
}

type LocationService interface {
	GetAll(ctx context.Context) ([]domain.Location, error)
	GetByID(ctx context.Context, id uint) (*domain.LocationDetail, error)
	Create(ctx context.Context, input CreateLocationInput, session domain.Session) (*domain.Location, error)
	DeleteByID(ctx context.Context, id uint, session domain.Session) error
}

type AwardService interface {
	GetAll(ctx context.Context) ([]domain.Award, error)
	GetByID(ctx context.Context, id uint) (*domain.Award, error)
	Create(ctx context.Context, input CreateAwardInput, session domain.Session) (*domain.Award, error)
	DeleteByID(ctx context.Context, id uint, session domain.Session) error
}
