package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/bornholm/tasks/internal/core/model"
	"github.com/bornholm/tasks/internal/http/handler/api/schema"
	"github.com/pkg/errors"
)

const (
	maxBodySize = 1 << 20

	detailTaskNotFound = "Task not found"
	detailNoChanges    = "at least one non null field is required"
	detailBodyTooLarge = "request body too large"
)

func getTaskID(r *http.Request) (model.TaskID, bool) {
	id, err := model.ParseTaskID(r.PathValue("taskID"))
	if err != nil {
		return 0, false
	}

	return id, true
}

// decodeBody validates the request body against the named schema
// then unmarshals it into dest. Bodies larger than maxBodySize are rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, name schema.Name, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := schema.Validate(name, data); err != nil {
		return errors.WithStack(err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return errors.WithStack(&schema.ValidationError{Reasons: []string{err.Error()}})
	}

	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, value any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := encoder.Encode(value); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slog.Any("error", errors.WithStack(err)))
	}
}

func writeDetail(w http.ResponseWriter, r *http.Request, statusCode int, detail string) {
	writeJSON(w, r, statusCode, ErrorResponse{Detail: detail})
}

func writeNotFound(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, r, http.StatusNotFound, detailTaskNotFound)
}

func writeInternalError(w http.ResponseWriter, r *http.Request, message string, err error) {
	slog.ErrorContext(r.Context(), message, slog.Any("error", errors.WithStack(err)))
	writeDetail(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// writeDecodeError answers 422 for invalid payloads, 413 for oversized
// bodies and 500 otherwise.
func writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		slog.DebugContext(r.Context(), "request body too large", slog.Int64("limit", maxBytesErr.Limit))
		writeDetail(w, r, http.StatusRequestEntityTooLarge, detailBodyTooLarge)
		return
	}

	var validationErr *schema.ValidationError
	if errors.As(err, &validationErr) {
		slog.DebugContext(r.Context(), "invalid payload", slog.Any("reasons", validationErr.Reasons))
		writeDetail(w, r, http.StatusUnprocessableEntity, validationErr.Error())
		return
	}

	writeInternalError(w, r, "could not decode request body", err)
}
