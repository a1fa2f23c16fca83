package services

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Jammz-kekw/urob.to/internal/cache"
	"github.com/Jammz-kekw/urob.to/internal/models"
)

// CachedAssignmentService invalidates cached task and project views on
// assignment writes. An assignment row appears inside the expanded task
// payload, so a new one makes both key spaces stale.
type CachedAssignmentService struct {
	inner AssignmentService
	cache cache.Cache
}

func NewCachedAssignmentService(inner AssignmentService, c cache.Cache) *CachedAssignmentService {
	return &CachedAssignmentService{inner: inner, cache: c}
}

func (s *CachedAssignmentService) CreateAssignment(db *gorm.DB, input AssignmentCreateInput) (models.Assignment, error) {
	assignment, err := s.inner.CreateAssignment(db, input)
	if err == nil {
		s.invalidate()
	}
	return assignment, err
}

func (s *CachedAssignmentService) GetAssignments(db *gorm.DB) ([]models.Assignment, error) {
	return s.inner.GetAssignments(db)
}

func (s *CachedAssignmentService) invalidate() {
	if err := s.cache.DeletePattern("task:*"); err != nil {
		log.Debugf("task cache invalidation failed: %v", err)
	}
	if err := s.cache.DeletePattern("project:*"); err != nil {
		log.Debugf("project cache invalidation failed: %v", err)
	}
}
