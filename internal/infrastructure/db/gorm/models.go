package gorm

import (
	"gorm.io/datatypes"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
)

// Constraint names. Foreign keys follow gorm's fk_<table>_<relation> naming.
const (
	idxFilmNameUnique    = "idx_film_name_unique"
	idxUserEmailUnique   = "idx_user_email_unique"
	idxLocationUnique    = "idx_location_street_city_country_unique"
	fkFilmsDirector      = "fk_films_director"
	fkFilmsAddedBy       = "fk_films_added_by"
	fkAwardsFilm         = "fk_awards_film"
	fkFilmActorsFilm     = "fk_film_actors_film"
	fkFilmActorsPerson   = "fk_film_actors_person"
	fkFilmLocationsFilm  = "fk_film_locations_film"
	fkFilmLocationsPlace = "fk_film_locations_location"
	pkFilmActors         = "film_actors_pkey"
	pkFilmLocations      = "film_locations_pkey"
)

type userModel struct {
	ID           uint                        `gorm:"primaryKey"`
	Name         string                      `gorm:"size:255;not null"`
	Email        string                      `gorm:"size:255;not null;uniqueIndex:idx_user_email_unique"`
	PasswordHash string                      `gorm:"size:255;not null"`
	Roles        datatypes.JSONSlice[string] `gorm:"not null"`
}

func (userModel) TableName() string { return "users" }

type personModel struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:255;not null"`
	LastName  string `gorm:"size:255;not null"`
	BirthDate string `gorm:"size:32;not null"`
	Country   string `gorm:"size:255;not null"`
}

func (personModel) TableName() string { return "persons" }

type locationModel struct {
	ID      uint   `gorm:"primaryKey"`
	Street  string `gorm:"size:255;not null;uniqueIndex:idx_location_street_city_country_unique,priority:1"`
	City    string `gorm:"size:255;not null;uniqueIndex:idx_location_street_city_country_unique,priority:2"`
	Country string `gorm:"size:255;not null;uniqueIndex:idx_location_street_city_country_unique,priority:3"`
	Photo   string `gorm:"size:1024;not null;default:''"`
}

func (locationModel) TableName() string { return "locations" }

type filmModel struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:255;not null;uniqueIndex:idx_film_name_unique"`
	Year          string `gorm:"size:16;not null"`
	Duration      string `gorm:"size:16;not null"`
	Genre         string `gorm:"size:255;not null"`
	Rating        string `gorm:"size:16;not null"`
	DirectorID    *uint
	Director      *personModel `gorm:"foreignKey:DirectorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	AddedByUserID *uint
	AddedBy       *userModel `gorm:"foreignKey:AddedByUserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (filmModel) TableName() string { return "films" }

type awardModel struct {
	ID     uint      `gorm:"primaryKey"`
	Name   string    `gorm:"size:255;not null"`
	Year   string    `gorm:"size:16;not null"`
	FilmID uint      `gorm:"not null;index"`
	Film   filmModel `gorm:"foreignKey:FilmID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (awardModel) TableName() string { return "awards" }

type filmActorModel struct {
	FilmID   uint        `gorm:"primaryKey;autoIncrement:false"`
	PersonID uint        `gorm:"primaryKey;autoIncrement:false;index"`
	Role     string      `gorm:"size:255;not null"`
	Film     filmModel   `gorm:"foreignKey:FilmID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Person   personModel `gorm:"foreignKey:PersonID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (filmActorModel) TableName() string { return "film_actors" }

type filmLocationModel struct {
	FilmID     uint          `gorm:"primaryKey;autoIncrement:false"`
	LocationID uint          `gorm:"primaryKey;autoIncrement:false;index"`
	Film       filmModel     `gorm:"foreignKey:FilmID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Location   locationModel `gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (filmLocationModel) TableName() string { return "film_locations" }

// allModels is the AutoMigrate list, parents before children.
func allModels() []any {
	return []any{
		&userModel{},
		&personModel{},
		&locationModel{},
		&filmModel{},
		&awardModel{},
		&filmActorModel{},
		&filmLocationModel{},
	}
}

func (m userModel) toDomain() domain.User {
	return domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Roles:        []string(m.Roles),
	}
}

func userFromDomain(u *domain.User) userModel {
	return userModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Roles:        datatypes.NewJSONSlice(u.Roles),
	}
}

func (m personModel) toDomain() domain.Person {
	return domain.Person{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		BirthDate: m.BirthDate,
		Country:   m.Country,
	}
}

func personFromDomain(p *domain.Person) personModel {
	return personModel{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		BirthDate: p.BirthDate,
		Country:   p.Country,
	}
}

func (m locationModel) toDomain() domain.Location {
	return domain.Location{
		ID:      m.ID,
		Street:  m.Street,
		City:    m.City,
		Country: m.Country,
		Photo:   m.Photo,
	}
}

func locationFromDomain(l *domain.Location) locationModel {
	return locationModel{
		ID:      l.ID,
		Street:  l.Street,
		City:    l.City,
		Country: l.Country,
		Photo:   l.Photo,
	}
}

func (m awardModel) toDomain() domain.Award {
	return domain.Award{ID: m.ID, Name: m.Name, Year: m.Year, FilmID: m.FilmID}
}

func (m filmModel) toDomain() domain.Film {
	f := domain.Film{
		ID:            m.ID,
		Name:          m.Name,
		Year:          m.Year,
		Duration:      m.Duration,
		Genre:         m.Genre,
		Rating:        m.Rating,
		DirectorID:    m.DirectorID,
		AddedByUserID: m.AddedByUserID,
	}
	if m.AddedBy != nil {
		name := m.AddedBy.Name
		f.AddedBy = &name
	}
	return f
}

func filmFromDomain(f *domain.Film) filmModel {
	return filmModel{
		ID:            f.ID,
		Name:          f.Name,
		Year:          f.Year,
		Duration:      f.Duration,
		Genre:         f.Genre,
		Rating:        f.Rating,
		DirectorID:    f.DirectorID,
		AddedByUserID: f.AddedByUserID,
	}
}
