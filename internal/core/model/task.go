package model

import (
	"strconv"
	"time"
)

const DefaultTaskStatus = "Pending"

type TaskID int64

func (id TaskID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func ParseTaskID(raw string) (TaskID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	return TaskID(id), nil
}

// Task holds the client supplied fields of a task.
// Description and DueDate are nil when absent.
type Task struct {
	Title       string
	Description *string
	Status      string
	DueDate     *string
}

type PersistedTask struct {
	Task

	ID        TaskID
	CreatedAt time.Time
}

// TaskChanges lists the fields an update overwrites.
// A nil field is left untouched.
type TaskChanges struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *string
}

func (c TaskChanges) Empty() bool {
	return c.Title == nil && c.Description == nil && c.Status == nil && c.DueDate == nil
}

// Apply returns a copy of the task with the changes merged in.
func (c TaskChanges) Apply(t Task) Task {
	if c.Title != nil {
		t.Title = *c.Title
	}
	if c.Description != nil {
		t.Description = c.Description
	}
	if c.Status != nil {
		t.Status = *c.Status
	}
	if c.DueDate != nil {
		t.DueDate = c.DueDate
	}
	return t
}

func NewTask(title string, description *string, status string, dueDate *string) Task {
	if status == "" {
		status = DefaultTaskStatus
	}

	return Task{
		Title:       title,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
	}
}
