package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) ports.LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) FindAll(ctx context.Context) ([]domain.Location, error) {
	var rows []locationModel
	if err := conn(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return toLocations(rows), nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id uint) (*domain.Location, error) {
	var m locationModel
	if err := conn(ctx, r.db).First(&m, id).Error; err != nil {
		return nil, translateError(err)
	}
	l := m.toDomain()
	return &l, nil
}

func (r *LocationRepository) FindByAddress(ctx context.Context, street, city, country string) (*domain.Location, error) {
	var m locationModel
	err := conn(ctx, r.db).
		Where("street = ? AND city = ? AND country = ?", street, city, country).
		First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	l := m.toDomain()
	return &l, nil
}

func (r *LocationRepository) FindFilms(ctx context.Context, id uint) ([]domain.FilmRef, error) {
	var rows []filmModel
	err := conn(ctx, r.db).
		Select("films.*").
		Joins("JOIN film_locations ON film_locations.film_id = films.id").
		Where("film_locations.location_id = ?", id).
		Order("films.id").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	films := make([]domain.FilmRef, 0, len(rows))
	for _, m := range rows {
		films = append(films, domain.FilmRef{ID: m.ID, Name: m.Name})
	}
	return films, nil
}

func (r *LocationRepository) CountFilmLinks(ctx context.Context, id uint) (int64, error) {
	var n int64
	if err := conn(ctx, r.db).Model(&filmLocationModel{}).Where("location_id = ?", id).Count(&n).Error; err != nil {
		return 0, translateError(err)
	}
	return n, nil
}

func (r *LocationRepository) Create(ctx context.Context, location *domain.Location) error {
	m := locationFromDomain(location)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return translateError(err)
	}
	location.ID = m.ID
	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, id uint) error {
	res := conn(ctx, r.db).Delete(&locationModel{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toLocations(rows []locationModel) []domain.Location {
	locations := make([]domain.Location, 0, len(rows))
	for _, m := range rows {
		locations = append(locations, m.toDomain())
	}
	return locations
}
