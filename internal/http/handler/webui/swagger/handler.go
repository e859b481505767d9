package swagger

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed dist/**
var distFS embed.FS

//go:embed openapi.yml
var openAPIDocument []byte

// Handler serves the API documentation UI and its OpenAPI document
type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler() *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	files, err := fs.Sub(distFS, "dist")
	if err != nil {
		panic(errors.WithStack(err))
	}

	h.mux.HandleFunc("GET /openapi.json", h.serveDocument)
	h.mux.Handle("GET /", http.FileServerFS(files))

	return h
}

func (h *Handler) serveDocument(w http.ResponseWriter, r *http.Request) {
	var document any
	if err := yaml.Unmarshal(openAPIDocument, &document); err != nil {
		slog.ErrorContext(r.Context(), "could not parse openapi document", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")

	if err := encoder.Encode(document); err != nil {
		slog.ErrorContext(r.Context(), "could not encode openapi document", slog.Any("error", errors.WithStack(err)))
	}
}

var _ http.Handler = &Handler{}
