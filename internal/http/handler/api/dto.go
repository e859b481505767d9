package api

import (
	"time"

	"github.com/bornholm/tasks/internal/core/model"
)

type Task struct {
	ID          model.TaskID `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      string       `json:"status"`
	DueDate     *string      `json:"due_date"`
	CreatedAt   time.Time    `json:"created_at"`
}

func toTask(t model.PersistedTask) Task {
	return Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
	}
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

func (r CreateTaskRequest) Task() model.Task {
	var status string
	if r.Status != nil {
		status = *r.Status
	}

	return model.NewTask(r.Title, r.Description, status, r.DueDate)
}

// UpdateTaskRequest is a partial update, absent or null fields are kept.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

func (r UpdateTaskRequest) Changes() model.TaskChanges {
	return model.TaskChanges{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		DueDate:     r.DueDate,
	}
}

type DeleteTaskResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
