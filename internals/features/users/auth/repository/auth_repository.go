// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "barterku_backend/internals/features/users/auth/model"
)

type AuthRepository interface {
	FindUserByUsername(username string) (*userModel.UserModel, error)
	FindUserByID(id uuid.UUID) (*userModel.UserModel, error)
	CreateUser(user *userModel.UserModel) error
}

type gormAuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &gormAuthRepository{db: db}
}

func (r *gormAuthRepository) FindUserByUsername(username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.db.Where("user_name = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormAuthRepository) FindUserByID(id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormAuthRepository) CreateUser(user *userModel.UserModel) error {
	return r.db.Create(user).Error
}
