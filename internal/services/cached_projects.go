package services

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Jammz-kekw/urob.to/internal/cache"
	"github.com/Jammz-kekw/urob.to/internal/models"
)

const projectCacheTTL = 5 * time.Minute

// CachedProjectService layers a read-through cache over project lookups.
// Project writes cascade into tasks, so invalidation clears both key
// spaces.
type CachedProjectService struct {
	inner ProjectService
	cache cache.Cache
}

func NewCachedProjectService(inner ProjectService, c cache.Cache) *CachedProjectService {
	return &CachedProjectService{inner: inner, cache: c}
}

func projectCacheKey(id uint) string {
	return fmt.Sprintf("project:%d", id)
}

func (s *CachedProjectService) CreateProjectWithTasks(db *gorm.DB, input ProjectCreateInput) (models.Project, error) {
	project, err := s.inner.CreateProjectWithTasks(db, input)
	if err == nil {
		s.invalidate()
	}
	return project, err
}

func (s *CachedProjectService) GetProjectByID(db *gorm.DB, id uint) (models.Project, error) {
	var project models.Project
	if err := s.cache.Get(projectCacheKey(id), &project); err == nil {
		return project, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Debugf("project cache read failed: %v", err)
	}

	project, err := s.inner.GetProjectByID(db, id)
	if err != nil {
		return project, err
	}

	if err := s.cache.Set(projectCacheKey(id), project, projectCacheTTL); err != nil {
		log.Debugf("project cache write failed: %v", err)
	}
	return project, nil
}

func (s *CachedProjectService) GetProjectsPaginated(db *gorm.DB, page, pageSize string) ([]models.Project, int64, error) {
	return s.inner.GetProjectsPaginated(db, page, pageSize)
}

func (s *CachedProjectService) UpdateProject(db *gorm.DB, id uint, input ProjectUpdateInput) (models.Project, error) {
	project, err := s.inner.UpdateProject(db, id, input)
	if err == nil {
		s.invalidate()
	}
	return project, err
}

func (s *CachedProjectService) DeleteProject(db *gorm.DB, id uint) (models.Project, error) {
	project, err := s.inner.DeleteProject(db, id)
	if err == nil {
		s.invalidate()
	}
	return project, err
}

func (s *CachedProjectService) invalidate() {
	if err := s.cache.DeletePattern("project:*"); err != nil {
		log.Debugf("project cache invalidation failed: %v", err)
	}
	if err := s.cache.DeletePattern("task:*"); err != nil {
		log.Debugf("task cache invalidation failed: %v", err)
	}
}
