package task

import (
	"net/http"

	"github.com/bornholm/tasks/internal/core/port"
)

type Handler struct {
	mux   *http.ServeMux
	store port.TaskStore
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store port.TaskStore) *Handler {
	h := &Handler{
		mux:   http.NewServeMux(),
		store: store,
	}

	h.mux.HandleFunc("GET /{$}", h.getIndexPage)
	h.mux.HandleFunc("GET /", h.getNotFoundPage)

	return h
}

var _ http.Handler = &Handler{}
