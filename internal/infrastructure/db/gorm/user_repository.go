package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/filmcatalog/webservices-film/internal/core/domain"
	"github.com/filmcatalog/webservices-film/internal/core/ports"
)

// UserRepository implements ports.UserRepository with gorm.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) ports.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var rows []userModel
	if err := conn(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	users := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		users = append(users, m.toDomain())
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var m userModel
	if err := conn(ctx, r.db).First(&m, id).Error; err != nil {
		return nil, translateError(err)
	}
	u := m.toDomain()
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	if err := conn(ctx, r.db).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	u := m.toDomain()
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	m := userFromDomain(user)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return translateError(err)
	}
	user.ID = m.ID
	return nil
}

// Update writes name and email only; password hash and roles are immutable here.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	err := conn(ctx, r.db).Model(&userModel{ID: user.ID}).Updates(map[string]any{
		"name":  user.Name,
		"email": user.Email,
	}).Error
	return translateError(err)
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	res := conn(ctx, r.db).Delete(&userModel{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
