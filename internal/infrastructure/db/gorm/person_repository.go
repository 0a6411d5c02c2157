package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) ports.PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) FindAll(ctx context.Context) ([]domain.Person, error) {
	var rows []personModel
	if err := conn(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	persons := make([]domain.Person, 0, len(rows))
	for _, m := range rows {
		persons = append(persons, m.toDomain())
	}
	return persons, nil
}

func (r *PersonRepository) FindByID(ctx context.Context, id uint) (*domain.Person, error) {
	var m personModel
	if err := conn(ctx, r.db).First(&m, id).Error; err != nil {
		return nil, translateError(err)
	}
	p := m.toDomain()
	return &p, nil
}

func (r *PersonRepository) FindRoles(ctx context.Context, id uint) ([]domain.PersonRole, error) {
	var rows []struct {
		FilmID   uint
		FilmName string
		Role     string
	}
	err := conn(ctx, r.db).
		Table("film_actors").
		Select("film_actors.film_id AS film_id, films.name AS film_name, film_actors.role AS role").
		Joins("JOIN films ON films.id = film_actors.film_id").
		Where("film_actors.person_id = ?", id).
		Order("films.id").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	roles := make([]domain.PersonRole, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, domain.PersonRole{FilmID: row.FilmID, FilmName: row.FilmName, Role: row.Role})
	}
	return roles, nil
}

func (r *PersonRepository) CountDirected(ctx context.Context, id uint) (int64, error) {
	var n int64
	if err := conn(ctx, r.db).Model(&filmModel{}).Where("director_id = ?", id).Count(&n).Error; err != nil {
		return 0, translateError(err)
	}
	return n, nil
}

func (r *PersonRepository) Create(ctx context.Context, person *domain.Person) error {
	m := personFromDomain(person)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return translateError(err)
	}
	person.ID = m.ID
	return nil
}

// Delete removes the person's acting credits before the person itself. Run it
// inside a transaction.
func (r *PersonRepository) Delete(ctx context.Context, id uint) error {
	db := conn(ctx, r.db)
	if err := db.Where("person_id = ?", id).Delete(&filmActorModel{}).Error; err != nil {
		return translateError(err)
	}
	res := db.Delete(&personModel{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
