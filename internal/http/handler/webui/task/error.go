package task

import (
	"net/http"

	"github.com/bornholm/tasks/internal/http/handler/webui/common"
	"github.com/bornholm/tasks/internal/http/handler/webui/common/component"
)

func (h *Handler) getNotFoundPage(w http.ResponseWriter, r *http.Request) {
	h.handleError(w, r, common.NewHTTPError(http.StatusNotFound, component.LinkItem{
		Label: "Back to tasks",
		URL:   component.BaseURL(r.Context(), "/"),
	}))
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	common.HandleError(w, r, err)
}
