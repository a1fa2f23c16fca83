package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestCreateAssignment_EmbedsUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAssignmentService()

	user := mustCreateUser(t, db, "alice", "alice@example.com")
	project := mustCreateProject(t, db, "P", TaskSpec{Title: "T1"})
	task := project.Tasks[0]

	assignment, err := svc.CreateAssignment(db, AssignmentCreateInput{UserID: user.ID, TaskID: task.ID})
	if err != nil {
		t.Fatalf("CreateAssignment failed: %v", err)
	}
	if assignment.ID == 0 {
		t.Error("expected system-assigned id, got 0")
	}
	if assignment.User.ID != user.ID || assignment.User.Username != "alice" {
		t.Errorf("expected embedded user %d, got %+v", user.ID, assignment.User)
	}
}

func TestCreateAssignment_DuplicatesPermitted(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAssignmentService()

	user := mustCreateUser(t, db, "alice", "alice@example.com")
	project := mustCreateProject(t, db, "P", TaskSpec{Title: "T1"})
	task := project.Tasks[0]

	input := AssignmentCreateInput{UserID: user.ID, TaskID: task.ID}
	if _, err := svc.CreateAssignment(db, input); err != nil {
		t.Fatalf("first CreateAssignment failed: %v", err)
	}
	if _, err := svc.CreateAssignment(db, input); err != nil {
		t.Fatalf("duplicate CreateAssignment should be permitted, got %v", err)
	}

	assignments, err := svc.GetAssignments(db)
	if err != nil {
		t.Fatalf("GetAssignments failed: %v", err)
	}
	if len(assignments) != 2 {
		t.Errorf("expected 2 assignments, got %d", len(assignments))
	}
}

func TestCreateAssignment_MissingUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAssignmentService()

	project := mustCreateProject(t, db, "P", TaskSpec{Title: "T1"})

	_, err := svc.CreateAssignment(db, AssignmentCreateInput{UserID: 9999, TaskID: project.Tasks[0].ID})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for missing user, got %v", err)
	}
}

func TestCreateAssignment_MissingTask(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAssignmentService()

	user := mustCreateUser(t, db, "alice", "alice@example.com")

	_, err := svc.CreateAssignment(db, AssignmentCreateInput{UserID: user.ID, TaskID: 9999})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for missing task, got %v", err)
	}
}
