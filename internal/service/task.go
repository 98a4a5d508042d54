package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskmate/taskmate-go/internal/model"
	"github.com/taskmate/taskmate-go/internal/repository"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrTaskNotFound        = errors.New("task not found")
)

// TaskStore is the persistence surface TaskService depends on. Implementations
// scope every lookup and mutation by owner and report a task that is missing
// or owned by someone else as repository.ErrTaskNotFound.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetByTaskID(ctx context.Context, userID int64, taskID string) (*model.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Task, error)
	Update(ctx context.Context, userID int64, taskID, title, description string) error
	Delete(ctx context.Context, userID int64, taskID string) error
}

// TaskService handles task business logic. Every operation is scoped to the
// authenticated owner; a task owned by someone else behaves exactly like a
// task that does not exist.
type TaskService struct {
	repo TaskStore
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo TaskStore) *TaskService {
	return &TaskService{repo: repo}
}

// Create validates and persists a new task owned by userID.
func (s *TaskService) Create(ctx context.Context, userID int64, req model.TaskRequest) (model.TaskResponse, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)

	if title == "" {
		return model.TaskResponse{}, ErrTitleRequired
	}
	if description == "" {
		return model.TaskResponse{}, ErrDescriptionRequired
	}

	task := &model.Task{
		TaskID:      uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return model.TaskResponse{}, err
	}

	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	return taskToResponse(task), nil
}

// List returns all tasks owned by userID.
func (s *TaskService) List(ctx context.Context, userID int64) ([]model.TaskResponse, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return tasksToResponse(tasks), nil
}

// Update rewrites a task's title and description. Nonexistent tasks and tasks
// owned by other users both return ErrTaskNotFound.
func (s *TaskService) Update(ctx context.Context, userID int64, taskID string, req model.TaskRequest) (model.TaskResponse, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)

	if title == "" {
		return model.TaskResponse{}, ErrTitleRequired
	}
	if description == "" {
		return model.TaskResponse{}, ErrDescriptionRequired
	}

	if err := s.repo.Update(ctx, userID, taskID, title, description); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.TaskResponse{}, ErrTaskNotFound
		}
		return model.TaskResponse{}, err
	}

	task, err := s.repo.GetByTaskID(ctx, userID, taskID)
	if err != nil {
		// The task can vanish between the update and this read; that is
		// still a not-found to the caller.
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.TaskResponse{}, ErrTaskNotFound
		}
		return model.TaskResponse{}, err
	}

	return taskToResponse(task), nil
}

// Delete removes a task with the same ownership-scoped existence rule as Update.
func (s *TaskService) Delete(ctx context.Context, userID int64, taskID string) error {
	err := s.repo.Delete(ctx, userID, taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	return err
}

func taskToResponse(task *model.Task) model.TaskResponse {
	return model.TaskResponse{
		ID:          task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// tasksToResponse converts a slice of Task to a slice of TaskResponse.
func tasksToResponse(tasks []model.Task) []model.TaskResponse {
	result := make([]model.TaskResponse, len(tasks))
	for i := range tasks {
		result[i] = taskToResponse(&tasks[i])
	}
	return result
}
