package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Jammz-kekw/urob.to/internal/models"
)

type AssignmentCreateInput struct {
	UserID uint `json:"user_id" binding:"required"`
	TaskID uint `json:"task_id" binding:"required"`
}

type AssignmentService interface {
	CreateAssignment(db *gorm.DB, input AssignmentCreateInput) (models.Assignment, error)
	GetAssignments(db *gorm.DB) ([]models.Assignment, error)
}

type AssignmentServiceImpl struct{}

func NewAssignmentService() *AssignmentServiceImpl {
	return &AssignmentServiceImpl{}
}

// CreateAssignment links a user to a task. Duplicate assignments are
// allowed; missing referents are reported as not-found.
func (s *AssignmentServiceImpl) CreateAssignment(db *gorm.DB, input AssignmentCreateInput) (models.Assignment, error) {
	var assignment models.Assignment

	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, input.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %d: %w", input.UserID, err)
			}
			return err
		}

		var task models.Task
		if err := tx.First(&task, input.TaskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("task %d: %w", input.TaskID, err)
			}
			return err
		}

		assignment = models.Assignment{
			UserID: input.UserID,
			TaskID: input.TaskID,
		}
		return tx.Create(&assignment).Error
	})
	if err != nil {
		return models.Assignment{}, err
	}

	result := db.Preload("User").First(&assignment, assignment.ID)
	return assignment, result.Error
}

func (s *AssignmentServiceImpl) GetAssignments(db *gorm.DB) ([]models.Assignment, error) {
	var assignments []models.Assignment
	result := db.Preload("User").Order("id").Find(&assignments)
	return assignments, result.Error
}
