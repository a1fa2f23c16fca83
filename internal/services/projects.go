package services

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/Jammz-kekw/urob.to/internal/models"
)

type ProjectCreateInput struct {
	Name        string     `json:"name" binding:"required,max=100"`
	Description string     `json:"description"`
	Tasks       []TaskSpec `json:"tasks" binding:"dive"`
}

type ProjectUpdateInput struct {
	Name        models.Optional[string] `json:"name"`
	Description models.Optional[string] `json:"description"`
}

func (in ProjectUpdateInput) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Name.Set {
		updates["name"] = optionalColumn(in.Name)
	}
	if in.Description.Set {
		updates["description"] = optionalColumn(in.Description)
	}
	return updates
}

type ProjectService interface {
	CreateProjectWithTasks(db *gorm.DB, input ProjectCreateInput) (models.Project, error)
	GetProjectByID(db *gorm.DB, id uint) (models.Project, error)
	GetProjectsPaginated(db *gorm.DB, page, pageSize string) ([]models.Project, int64, error)
	UpdateProject(db *gorm.DB, id uint, input ProjectUpdateInput) (models.Project, error)
	DeleteProject(db *gorm.DB, id uint) (models.Project, error)
}

type ProjectServiceImpl struct{}

func NewProjectService() *ProjectServiceImpl {
	return &ProjectServiceImpl{}
}

// CreateProjectWithTasks creates a project and its nested tasks, tag links
// and assignments as one transaction. A failure anywhere rolls back the
// whole aggregate so no partial project is left behind. Tasks are created
// in input order.
func (s *ProjectServiceImpl) CreateProjectWithTasks(db *gorm.DB, input ProjectCreateInput) (models.Project, error) {
	project := models.Project{
		Name:        input.Name,
		Description: input.Description,
	}

	tx := db.Begin()
	if tx.Error != nil {
		return models.Project{}, tx.Error
	}

	if err := tx.Create(&project).Error; err != nil {
		tx.Rollback()
		return models.Project{}, err
	}

	for _, spec := range input.Tasks {
		if _, err := createTaskInTx(tx, project.ID, spec); err != nil {
			tx.Rollback()
			return models.Project{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return models.Project{}, err
	}

	return s.GetProjectByID(db, project.ID)
}

func (s *ProjectServiceImpl) GetProjectByID(db *gorm.DB, id uint) (models.Project, error) {
	var project models.Project
	result := db.Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("tasks.id") }).
		Preload("Tasks.Tags").
		Preload("Tasks.Assignments.User").
		First(&project, id)
	return project, result.Error
}

func (s *ProjectServiceImpl) GetProjectsPaginated(db *gorm.DB, page, pageSize string) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	p := 1
	ps := 50
	if v, err := strconv.Atoi(page); err == nil && v > 0 {
		p = v
	}
	if v, err := strconv.Atoi(pageSize); err == nil && v > 0 && v <= 100 {
		ps = v
	}
	offset := (p - 1) * ps

	if err := db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	result := db.Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("tasks.id") }).
		Preload("Tasks.Tags").
		Preload("Tasks.Assignments.User").
		Order("id").Offset(offset).Limit(ps).Find(&projects)
	return projects, total, result.Error
}

// UpdateProject patches name and description only. Nested task
// reconciliation is deliberately not part of this operation.
func (s *ProjectServiceImpl) UpdateProject(db *gorm.DB, id uint, input ProjectUpdateInput) (models.Project, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			return err
		}

		updates := input.changes()
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&project).Updates(updates).Error
	})
	if err != nil {
		return models.Project{}, err
	}

	return s.GetProjectByID(db, id)
}

// DeleteProject removes the project and returns its prior state including
// the task tree that went with it.
func (s *ProjectServiceImpl) DeleteProject(db *gorm.DB, id uint) (models.Project, error) {
	var project models.Project

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("tasks.id") }).
			Preload("Tasks.Tags").
			Preload("Tasks.Assignments.User").
			First(&project, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}
