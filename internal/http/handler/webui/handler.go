package webui

import (
	"net/http"
	"strings"

	"github.com/bornholm/tasks/internal/core/port"
	"github.com/bornholm/tasks/internal/http/handler/webui/task"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store port.TaskStore) *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	mount(h.mux, "/", task.NewHandler(store))

	return h
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
