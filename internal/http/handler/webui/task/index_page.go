package task

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/tasks/internal/http/handler/webui/task/component"
	"github.com/pkg/errors"
)

func (h *Handler) getIndexPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.store.QueryTasks(ctx)
	if err != nil {
		h.handleError(w, r, errors.Wrap(err, "could not query tasks"))
		return
	}

	vmodel := component.IndexPageVModel{
		Tasks: tasks,
	}

	templ.Handler(component.IndexPage(vmodel)).ServeHTTP(w, r)
}
