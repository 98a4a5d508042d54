package repository

import (
	"testing"
)

func TestNewTaskRepository(t *testing.T) {
	repo := NewTaskRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil TaskRepository")
	}
}

func TestNewProjectRepository(t *testing.T) {
	repo := NewProjectRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil ProjectRepository")
	}
}

func TestTaskSentinelError(t *testing.T) {
	if ErrTaskNotFound == nil {
		t.Fatal("ErrTaskNotFound should not be nil")
	}
	if ErrTaskNotFound.Error() != "task not found" {
		t.Fatalf("unexpected error message: %s", ErrTaskNotFound.Error())
	}
}
