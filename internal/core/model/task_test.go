package model

import "testing"

func TestNewTaskDefaultStatus(t *testing.T) {
	task := NewTask("Buy milk", nil, "", nil)

	if e, g := DefaultTaskStatus, task.Status; e != g {
		t.Errorf("task.Status: expected %s, got %s", e, g)
	}

	if task.Description != nil {
		t.Errorf("task.Description: expected nil, got %v", *task.Description)
	}
}

func TestTaskChangesApply(t *testing.T) {
	description := "Two liters"
	task := NewTask("Buy milk", &description, "", nil)

	status := "Completed"
	changes := TaskChanges{Status: &status}

	if changes.Empty() {
		t.Fatalf("changes.Empty(): expected false")
	}

	updated := changes.Apply(task)

	if e, g := status, updated.Status; e != g {
		t.Errorf("updated.Status: expected %s, got %s", e, g)
	}

	if e, g := task.Title, updated.Title; e != g {
		t.Errorf("updated.Title: expected %s, got %s", e, g)
	}

	if updated.Description == nil || *updated.Description != description {
		t.Errorf("updated.Description: expected %s, got %v", description, updated.Description)
	}

	if task.Status != DefaultTaskStatus {
		t.Errorf("task.Status: original task should not be modified, got %s", task.Status)
	}
}

func TestParseTaskID(t *testing.T) {
	id, err := ParseTaskID("42")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := TaskID(42), id; e != g {
		t.Errorf("id: expected %d, got %d", e, g)
	}

	if _, err := ParseTaskID("abc"); err == nil {
		t.Errorf("ParseTaskID(\"abc\"): expected an error")
	}
}
