package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Jammz-kekw/urob.to/internal/models"
)

var dbSeq int64

// setupTestDB opens a private in-memory SQLite database with foreign keys
// enabled, so cascade rules behave like the production schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared&_foreign_keys=on", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Project{},
		&models.Task{},
		&models.Assignment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func mustCreateUser(t *testing.T, db *gorm.DB, username, email string) models.User {
	t.Helper()
	user, err := NewUserService().CreateUser(db, UserCreateInput{Username: username, Email: email})
	if err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func mustCreateTag(t *testing.T, db *gorm.DB, name, color string) models.Tag {
	t.Helper()
	tag, err := NewTagService().CreateTag(db, TagCreateInput{Name: name, Color: color})
	if err != nil {
		t.Fatalf("failed to create tag %s: %v", name, err)
	}
	return tag
}

func mustCreateProject(t *testing.T, db *gorm.DB, name string, tasks ...TaskSpec) models.Project {
	t.Helper()
	project, err := NewProjectService().CreateProjectWithTasks(db, ProjectCreateInput{
		Name:  name,
		Tasks: tasks,
	})
	if err != nil {
		t.Fatalf("failed to create project %s: %v", name, err)
	}
	return project
}
