package gorm

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

type AwardRepository struct {
	db *gorm.DB
}

func NewAwardRepository(db *gorm.DB) ports.AwardRepository {
	return &AwardRepository{db: db}
}

func (r *AwardRepository) FindAll(ctx context.Context) ([]domain.Award, error) {
	var rows []awardModel
	if err := conn(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return toAwards(rows), nil
}

func (r *AwardRepository) FindByID(ctx context.Context, id uint) (*domain.Award, error) {
	var m awardModel
	if err := conn(ctx, r.db).First(&m, id).Error; err != nil {
		return nil, translateError(err)
	}
	a := m.toDomain()
	return &a, nil
}

func (r *AwardRepository) FindByFilm(ctx context.Context, filmID uint) ([]domain.Award, error) {
	var rows []awardModel
	if err := conn(ctx, r.db).Where("film_id = ?", filmID).Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return toAwards(rows), nil
}

func (r *AwardRepository) Create(ctx context.Context, award *domain.Award) error {
	m := awardModel{Name: award.Name, Year: award.Year, FilmID: award.FilmID}
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translateError(err)
	}
	award.ID = m.ID
	return nil
}

func (r *AwardRepository) Delete(ctx context.Context, id uint) error {
	res := conn(ctx, r.db).Delete(&awardModel{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AwardRepository) DeleteByFilm(ctx context.Context, filmID uint) error {
	return translateError(conn(ctx, r.db).Where("film_id = ?", filmID).Delete(&awardModel{}).Error)
}

func toAwards(rows []awardModel) []domain.Award {
	awards := make([]domain.Award, 0, len(rows))
	for _, m := range rows {
		awards = append(awards, m.toDomain())
	}
	return awards
}
