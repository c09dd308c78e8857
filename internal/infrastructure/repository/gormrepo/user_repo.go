package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"github.com/mikiasgoitom/QAForum/internal/domain/contract"
	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

// UserRepository is the GORM implementation of contract.IUserRepository.
type UserRepository struct {
	db *gorm.DB
}

var _ contract.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	return translateError(conn(ctx, r.db).Create(user).Error)
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := conn(ctx, r.db).First(&user, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	if err := conn(ctx, r.db).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}
