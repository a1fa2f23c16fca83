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

const taskCacheTTL = 5 * time.Minute

// CachedTaskService layers a read-through cache over task lookups. Writes
// invalidate both task and project keys since a task mutation changes its
// project's expanded view.
type CachedTaskService struct {
	inner TaskService
	cache cache.Cache
}

func NewCachedTaskService(inner TaskService, c cache.Cache) *CachedTaskService {
	return &CachedTaskService{inner: inner, cache: c}
}

func taskCacheKey(id uint) string {
	return fmt.Sprintf("task:%d", id)
}

func (s *CachedTaskService) CreateTask(db *gorm.DB, input TaskCreateInput) (models.Task, error) {
	task, err := s.inner.CreateTask(db, input)
	if err == nil {
		s.invalidate()
	}
	return task, err
}

func (s *CachedTaskService) GetTaskByID(db *gorm.DB, id uint) (models.Task, error) {
	var task models.Task
	if err := s.cache.Get(taskCacheKey(id), &task); err == nil {
		return task, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Debugf("task cache read failed: %v", err)
	}

	task, err := s.inner.GetTaskByID(db, id)
	if err != nil {
		return task, err
	}

	if err := s.cache.Set(taskCacheKey(id), task, taskCacheTTL); err != nil {
		log.Debugf("task cache write failed: %v", err)
	}
	return task, nil
}

func (s *CachedTaskService) GetTasksPaginated(db *gorm.DB, sortBy, order, page, pageSize string) ([]models.Task, int64, error) {
	return s.inner.GetTasksPaginated(db, sortBy, order, page, pageSize)
}

func (s *CachedTaskService) UpdateTask(db *gorm.DB, id uint, input TaskUpdateInput) (models.Task, error) {
	task, err := s.inner.UpdateTask(db, id, input)
	if err == nil {
		s.invalidate()
	}
	return task, err
}

func (s *CachedTaskService) DeleteTask(db *gorm.DB, id uint) (models.Task, error) {
	task, err := s.inner.DeleteTask(db, id)
	if err == nil {
		s.invalidate()
	}
	return task, err
}

func (s *CachedTaskService) invalidate() {
	if err := s.cache.DeletePattern("task:*"); err != nil {
		log.Debugf("task cache invalidation failed: %v", err)
	}
	if err := s.cache.DeletePattern("project:*"); err != nil {
		log.Debugf("project cache invalidation failed: %v", err)
	}
}
