package model

import "time"

// Task represents a task in the database. TaskID is the opaque public
// identifier exposed over the API; ID is the internal row id.
type Task struct {
	ID          int64
	TaskID      string
	UserID      int64
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskRequest represents a task create or update request body.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
