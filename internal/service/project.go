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

var ErrNameRequired = errors.New("name is required")

// ProjectService handles project business logic.
type ProjectService struct {
	repo *repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create validates and persists a new project owned by userID.
func (s *ProjectService) Create(ctx context.Context, userID int64, req model.ProjectRequest) (model.ProjectResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.ProjectResponse{}, ErrNameRequired
	}

	project := &model.Project{
		ProjectID:   uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return model.ProjectResponse{}, err
	}

	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	return projectToResponse(project), nil
}

// List returns all projects owned by userID.
func (s *ProjectService) List(ctx context.Context, userID int64) ([]model.ProjectResponse, error) {
	projects, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.ProjectResponse, len(projects))
	for i := range projects {
		result[i] = projectToResponse(&projects[i])
	}
	return result, nil
}

func projectToResponse(project *model.Project) model.ProjectResponse {
	return model.ProjectResponse{
		ID:          project.ProjectID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
