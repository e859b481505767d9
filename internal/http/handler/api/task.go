package api

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/tasks/internal/core/port"
	"github.com/bornholm/tasks/internal/http/handler/api/schema"
	"github.com/pkg/errors"
)

const messageTaskDeleted = "Task deleted successfully"

func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTaskRequest
	if err := decodeBody(w, r, schema.TaskCreate, &req); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	taskID, err := h.store.CreateTask(ctx, req.Task())
	if err != nil {
		writeInternalError(w, r, "could not create task", err)
		return
	}

	task, err := h.store.GetTaskByID(ctx, taskID)
	if err != nil {
		writeInternalError(w, r, "could not retrieve created task", err)
		return
	}

	slog.DebugContext(ctx, "task created", slog.String("taskID", taskID.String()))

	writeJSON(w, r, http.StatusOK, toTask(task))
}

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.store.QueryTasks(ctx)
	if err != nil {
		writeInternalError(w, r, "could not query tasks", err)
		return
	}

	res := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, toTask(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := getTaskID(r)
	if !ok {
		writeDetail(w, r, http.StatusUnprocessableEntity, "invalid task id")
		return
	}

	task, err := h.store.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeNotFound(w, r)
			return
		}

		writeInternalError(w, r, "could not retrieve task", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toTask(task))
}

func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := getTaskID(r)
	if !ok {
		writeDetail(w, r, http.StatusUnprocessableEntity, "invalid task id")
		return
	}

	var req UpdateTaskRequest
	if err := decodeBody(w, r, schema.TaskUpdate, &req); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	changes := req.Changes()
	if changes.Empty() {
		writeDetail(w, r, http.StatusUnprocessableEntity, detailNoChanges)
		return
	}

	if _, err := h.store.GetTaskByID(ctx, taskID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeNotFound(w, r)
			return
		}

		writeInternalError(w, r, "could not retrieve task", err)
		return
	}

	if err := h.store.UpdateTask(ctx, taskID, changes); err != nil {
		writeInternalError(w, r, "could not update task", err)
		return
	}

	task, err := h.store.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			// Deleted between the update and the read back
			writeNotFound(w, r)
			return
		}

		writeInternalError(w, r, "could not retrieve updated task", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toTask(task))
}

func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := getTaskID(r)
	if !ok {
		writeDetail(w, r, http.StatusUnprocessableEntity, "invalid task id")
		return
	}

	deleted, err := h.store.DeleteTask(ctx, taskID)
	if err != nil {
		writeInternalError(w, r, "could not delete task", err)
		return
	}

	if !deleted {
		writeNotFound(w, r)
		return
	}

	writeJSON(w, r, http.StatusOK, DeleteTaskResponse{Message: messageTaskDeleted})
}
