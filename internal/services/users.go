package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Jammz-kekw/urob.to/internal/models"
)

type UserCreateInput struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Email    string `json:"email" binding:"required,email,max=120"`
}

type UserService interface {
	CreateUser(db *gorm.DB, input UserCreateInput) (models.User, error)
	GetUserByID(db *gorm.DB, id uint) (models.User, error)
	GetUsers(db *gorm.DB, offset, limit int) ([]models.User, error)
}

type UserServiceImpl struct{}

func NewUserService() *UserServiceImpl {
	return &UserServiceImpl{}
}

func (s *UserServiceImpl) CreateUser(db *gorm.DB, input UserCreateInput) (models.User, error) {
	var user models.User

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Where("username = ?", input.Username).First(&existing).Error; err == nil {
			return ErrDuplicateUsername
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			return ErrDuplicateEmail
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		user = models.User{
			Username: input.Username,
			Email:    input.Email,
		}
		return tx.Create(&user).Error
	})

	return user, err
}

func (s *UserServiceImpl) GetUserByID(db *gorm.DB, id uint) (models.User, error) {
	var user models.User
	result := db.First(&user, id)
	return user, result.Error
}

func (s *UserServiceImpl) GetUsers(db *gorm.DB, offset, limit int) ([]models.User, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	var users []models.User
	result := db.Order("id").Offset(offset).Limit(limit).Find(&users)
	return users, result.Error
}
