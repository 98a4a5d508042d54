package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/taskmate/taskmate-go/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepository handles task persistence operations. Every query is scoped
// by user_id so a task never surfaces outside its owner's requests.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task and sets the generated row ID on the task struct.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (task_id, user_id, title, description) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, task.TaskID, task.UserID, task.Title, task.Description)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetByTaskID retrieves a task by owner and public task ID.
func (r *TaskRepository) GetByTaskID(ctx context.Context, userID int64, taskID string) (*model.Task, error) {
	query := `SELECT id, task_id, user_id, title, description, created_at, updated_at
		FROM tasks WHERE user_id = ? AND task_id = ?`

	task := &model.Task{}
	err := r.db.QueryRowContext(ctx, query, userID, taskID).Scan(
		&task.ID, &task.TaskID, &task.UserID, &task.Title, &task.Description,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

// ListByUser retrieves all tasks owned by a user in insertion order.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	query := `SELECT id, task_id, user_id, title, description, created_at, updated_at
		FROM tasks WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID, &t.TaskID, &t.UserID, &t.Title, &t.Description,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update rewrites a task's title and description and refreshes updated_at.
// The WHERE clause covers both existence and ownership in a single statement,
// so a missing task and another user's task are indistinguishable: both
// return ErrTaskNotFound. The pool is opened with clientFoundRows, so
// RowsAffected here counts matched rows and a rewrite with identical values
// still counts as found.
func (r *TaskRepository) Update(ctx context.Context, userID int64, taskID, title, description string) error {
	query := `UPDATE tasks SET title = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND task_id = ?`

	result, err := r.db.ExecContext(ctx, query, title, description, userID, taskID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// Delete removes a task with the same ownership-scoped existence rule as Update.
func (r *TaskRepository) Delete(ctx context.Context, userID int64, taskID string) error {
	query := `DELETE FROM tasks WHERE user_id = ? AND task_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, taskID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
