package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Jammz-kekw/urob.to/internal/models"
)

type TagCreateInput struct {
	Name  string `json:"name" binding:"required,max=50"`
	Color string `json:"color" binding:"required,max=50"`
}

type TagService interface {
	CreateTag(db *gorm.DB, input TagCreateInput) (models.Tag, error)
	GetTags(db *gorm.DB) ([]models.Tag, error)
}

type TagServiceImpl struct{}

func NewTagService() *TagServiceImpl {
	return &TagServiceImpl{}
}

func (s *TagServiceImpl) CreateTag(db *gorm.DB, input TagCreateInput) (models.Tag, error) {
	var tag models.Tag

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.Tag
		if err := tx.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			return ErrDuplicateTagName
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		tag = models.Tag{
			Name:  input.Name,
			Color: input.Color,
		}
		return tx.Create(&tag).Error
	})

	return tag, err
}

func (s *TagServiceImpl) GetTags(db *gorm.DB) ([]models.Tag, error) {
	var tags []models.Tag
	result := db.Order("id").Find(&tags)
	return tags, result.Error
}
