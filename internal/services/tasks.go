package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Jammz-kekw/urob.to/internal/models"
)

// TaskSpec describes a task to create, standalone or nested inside a
// project creation request. Tag and user IDs that do not resolve to
// existing rows are silently dropped.
type TaskSpec struct {
	Title       string     `json:"title" binding:"required,max=150"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	Tags        []uint     `json:"tags"`
	Users       []uint     `json:"users"`
}

type TaskCreateInput struct {
	TaskSpec
	ProjectID uint `json:"project_id" binding:"required"`
}

type TaskUpdateInput struct {
	Title       models.Optional[string]    `json:"title"`
	Description models.Optional[string]    `json:"description"`
	Status      models.Optional[string]    `json:"status"`
	DueDate     models.Optional[time.Time] `json:"due_date"`
}

func (in TaskUpdateInput) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Title.Set {
		updates["title"] = optionalColumn(in.Title)
	}
	if in.Description.Set {
		updates["description"] = optionalColumn(in.Description)
	}
	if in.Status.Set {
		updates["status"] = optionalColumn(in.Status)
	}
	if in.DueDate.Set {
		updates["due_date"] = optionalColumn(in.DueDate)
	}
	return updates
}

// optionalColumn maps an explicit JSON null onto a SQL NULL.
func optionalColumn[T any](o models.Optional[T]) interface{} {
	if !o.Valid {
		return nil
	}
	return o.Value
}

type TaskService interface {
	CreateTask(db *gorm.DB, input TaskCreateInput) (models.Task, error)
	GetTaskByID(db *gorm.DB, id uint) (models.Task, error)
	GetTasksPaginated(db *gorm.DB, sortBy, order, page, pageSize string) ([]models.Task, int64, error)
	UpdateTask(db *gorm.DB, id uint, input TaskUpdateInput) (models.Task, error)
	DeleteTask(db *gorm.DB, id uint) (models.Task, error)
}

type TaskServiceImpl struct{}

func NewTaskService() *TaskServiceImpl {
	return &TaskServiceImpl{}
}

func (s *TaskServiceImpl) CreateTask(db *gorm.DB, input TaskCreateInput) (models.Task, error) {
	var task models.Task

	err := db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, input.ProjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("project %d: %w", input.ProjectID, err)
			}
			return err
		}

		created, err := createTaskInTx(tx, input.ProjectID, input.TaskSpec)
		if err != nil {
			return err
		}
		task = created
		return nil
	})
	if err != nil {
		return models.Task{}, err
	}

	return s.GetTaskByID(db, task.ID)
}

// createTaskInTx inserts one task and links its tag and user references.
// Unknown IDs resolve to nothing and are dropped without error. Shared by
// standalone task creation and the nested project create.
func createTaskInTx(tx *gorm.DB, projectID uint, spec TaskSpec) (models.Task, error) {
	status := spec.Status
	if status == "" {
		status = "todo"
	}

	task := models.Task{
		ProjectID:   projectID,
		Title:       spec.Title,
		Description: spec.Description,
		Status:      status,
		DueDate:     spec.DueDate,
	}
	if err := tx.Create(&task).Error; err != nil {
		return task, err
	}

	if len(spec.Tags) > 0 {
		var tags []models.Tag
		if err := tx.Where("id IN ?", spec.Tags).Find(&tags).Error; err != nil {
			return task, err
		}
		if len(tags) > 0 {
			if err := tx.Model(&task).Association("Tags").Append(&tags); err != nil {
				return task, err
			}
		}
	}

	if len(spec.Users) > 0 {
		var users []models.User
		if err := tx.Where("id IN ?", spec.Users).Find(&users).Error; err != nil {
			return task, err
		}
		for _, user := range users {
			assignment := models.Assignment{UserID: user.ID, TaskID: task.ID}
			if err := tx.Create(&assignment).Error; err != nil {
				return task, err
			}
		}
	}

	return task, nil
}

func (s *TaskServiceImpl) GetTaskByID(db *gorm.DB, id uint) (models.Task, error) {
	var task models.Task
	result := db.Preload("Tags").Preload("Assignments.User").First(&task, id)
	return task, result.Error
}

func (s *TaskServiceImpl) GetTasksPaginated(db *gorm.DB, sortBy, order, page, pageSize string) ([]models.Task, int64, error) {
	var tasks []models.Task
	var total int64

	allowedSort := map[string]bool{"id": true, "created_at": true, "updated_at": true, "due_date": true, "title": true}
	if !allowedSort[sortBy] {
		sortBy = "id"
	}
	if order != "asc" && order != "desc" {
		order = "asc"
	}

	p := 1
	ps := 50
	if v, err := strconv.Atoi(page); err == nil && v > 0 {
		p = v
	}
	if v, err := strconv.Atoi(pageSize); err == nil && v > 0 && v <= 100 {
		ps = v
	}
	offset := (p - 1) * ps

	if err := db.Model(&models.Task{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	result := db.Preload("Tags").Preload("Assignments.User").
		Order(sortBy + " " + order).Offset(offset).Limit(ps).Find(&tasks)
	return tasks, total, result.Error
}

func (s *TaskServiceImpl) UpdateTask(db *gorm.DB, id uint, input TaskUpdateInput) (models.Task, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, id).Error; err != nil {
			return err
		}

		updates := input.changes()
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&task).Updates(updates).Error
	})
	if err != nil {
		return models.Task{}, err
	}

	return s.GetTaskByID(db, id)
}

// DeleteTask removes the task and returns its prior state. Tag links and
// assignments go with it via the schema's cascade rules.
func (s *TaskServiceImpl) DeleteTask(db *gorm.DB, id uint) (models.Task, error) {
	var task models.Task

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Tags").Preload("Assignments.User").First(&task, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, id).Error
	})
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}
