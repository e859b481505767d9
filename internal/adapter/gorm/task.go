package gorm

import (
	"time"

	"github.com/bornholm/tasks/internal/core/model"
)

type Task struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	CreatedAt time.Time

	Title       string `gorm:"not null"`
	Description *string
	Status      string `gorm:"default:Pending"`
	DueDate     *string
}

func fromTask(t model.Task) *Task {
	status := t.Status
	if status == "" {
		status = model.DefaultTaskStatus
	}

	return &Task{
		Title:       t.Title,
		Description: t.Description,
		Status:      status,
		DueDate:     t.DueDate,
	}
}

func toPersistedTask(t *Task) model.PersistedTask {
	return model.PersistedTask{
		ID:        model.TaskID(t.ID),
		CreatedAt: t.CreatedAt,
		Task: model.Task{
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status,
			DueDate:     t.DueDate,
		},
	}
}

func toUpdates(changes model.TaskChanges) map[string]any {
	updates := map[string]any{}

	if changes.Title != nil {
		updates["title"] = *changes.Title
	}

	if changes.Description != nil {
		updates["description"] = *changes.Description
	}

	if changes.Status != nil {
		updates["status"] = *changes.Status
	}

	if changes.DueDate != nil {
		updates["due_date"] = *changes.DueDate
	}

	return updates
}
