package gorm

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

type FilmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) ports.FilmRepository {
	return &FilmRepository{db: db}
}

func (r *FilmRepository) FindAll(ctx context.Context) ([]domain.Film, error) {
	var rows []filmModel
	if err := conn(ctx, r.db).Preload("AddedBy").Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	films := make([]domain.Film, 0, len(rows))
	for _, m := range rows {
		films = append(films, m.toDomain())
	}
	return films, nil
}

func (r *FilmRepository) FindByID(ctx context.Context, id uint) (*domain.Film, error) {
	var m filmModel
	if err := conn(ctx, r.db).Preload("AddedBy").First(&m, id).Error; err != nil {
		return nil, translateError(err)
	}
	f := m.toDomain()
	return &f, nil
}

func (r *FilmRepository) FindActors(ctx context.Context, filmID uint) ([]domain.Actor, error) {
	var rows []struct {
		ID        uint
		FirstName string
		LastName  string
		BirthDate string
		Country   string
		Role      string
	}
	err := conn(ctx, r.db).
		Table("film_actors").
		Select("persons.id, persons.first_name, persons.last_name, persons.birth_date, persons.country, film_actors.role").
		Joins("JOIN persons ON persons.id = film_actors.person_id").
		Where("film_actors.film_id = ?", filmID).
		Order("persons.id").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	actors := make([]domain.Actor, 0, len(rows))
	for _, row := range rows {
		actors = append(actors, domain.Actor{
			Person: domain.Person{
				ID:        row.ID,
				FirstName: row.FirstName,
				LastName:  row.LastName,
				BirthDate: row.BirthDate,
				Country:   row.Country,
			},
			Role: row.Role,
		})
	}
	return actors, nil
}

func (r *FilmRepository) FindLocations(ctx context.Context, filmID uint) ([]domain.Location, error) {
	var rows []locationModel
	err := conn(ctx, r.db).
		Select("locations.*").
		Joins("JOIN film_locations ON film_locations.location_id = locations.id").
		Where("film_locations.film_id = ?", filmID).
		Order("locations.id").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toLocations(rows), nil
}

func (r *FilmRepository) Create(ctx context.Context, film *domain.Film) error {
	m := filmFromDomain(film)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translateError(err)
	}
	film.ID = m.ID
	return nil
}

func (r *FilmRepository) Update(ctx context.Context, film *domain.Film) error {
	err := conn(ctx, r.db).Model(&filmModel{ID: film.ID}).Updates(map[string]any{
		"name":        film.Name,
		"year":        film.Year,
		"duration":    film.Duration,
		"genre":       film.Genre,
		"rating":      film.Rating,
		"director_id": film.DirectorID,
	}).Error
	return translateError(err)
}

func (r *FilmRepository) Delete(ctx context.Context, id uint) error {
	res := conn(ctx, r.db).Delete(&filmModel{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FilmRepository) AddActor(ctx context.Context, filmID, personID uint, role string) error {
	link := filmActorModel{FilmID: filmID, PersonID: personID, Role: role}
	return translateError(conn(ctx, r.db).Omit(clause.Associations).Create(&link).Error)
}

func (r *FilmRepository) DeleteActors(ctx context.Context, filmID uint) error {
	return translateError(conn(ctx, r.db).Where("film_id = ?", filmID).Delete(&filmActorModel{}).Error)
}

func (r *FilmRepository) AddLocation(ctx context.Context, filmID, locationID uint) error {
	link := filmLocationModel{FilmID: filmID, LocationID: locationID}
	return translateError(conn(ctx, r.db).Omit(clause.Associations).Create(&link).Error)
}

func (r *FilmRepository) DeleteLocations(ctx context.Context, filmID uint) error {
	return translateError(conn(ctx, r.db).Where("film_id = ?", filmID).Delete(&filmLocationModel{}).Error)
}
