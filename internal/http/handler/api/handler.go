package api

import (
	"net/http"

	"github.com/bornholm/tasks/internal/core/port"
)

type Handler struct {
	store port.TaskStore
	mux   *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store port.TaskStore) *Handler {
	h := &Handler{
		store: store,
		mux:   &http.ServeMux{},
	}

	h.mux.HandleFunc("POST /tasks", h.handleCreateTask)
	h.mux.HandleFunc("GET /tasks", h.handleListTasks)
	h.mux.HandleFunc("GET /tasks/{taskID}", h.handleGetTask)
	h.mux.HandleFunc("PATCH /tasks/{taskID}", h.handleUpdateTask)
	h.mux.HandleFunc("DELETE /tasks/{taskID}", h.handleDeleteTask)

	return h
}

var _ http.Handler = &Handler{}
