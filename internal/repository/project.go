package repository

import (
	"context"
	"database/sql"

	"github.com/taskmate/taskmate-go/internal/model"
)

// ProjectRepository handles project persistence operations.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project and sets the generated row ID on the struct.
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	query := `INSERT INTO projects (project_id, user_id, name, description) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, project.ProjectID, project.UserID, project.Name, project.Description)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	project.ID = id
	return nil
}

// ListByUser retrieves all projects owned by a user in insertion order.
func (r *ProjectRepository) ListByUser(ctx context.Context, userID int64) ([]model.Project, error) {
	query := `SELECT id, project_id, user_id, name, description, created_at, updated_at
		FROM projects WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(
			&p.ID, &p.ProjectID, &p.UserID, &p.Name, &p.Description,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}
