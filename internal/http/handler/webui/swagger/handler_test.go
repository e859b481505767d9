package swagger

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestServeDocument(t *testing.T) {
	server := httptest.NewServer(NewHandler())
	defer server.Close()

	res, err := http.Get(server.URL + "/openapi.json")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected %d, got %d", e, g)
	}

	if e, g := "application/json", res.Header.Get("Content-Type"); e != g {
		t.Errorf("Content-Type: expected '%s', got '%s'", e, g)
	}

	var document struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}

	if err := json.NewDecoder(res.Body).Decode(&document); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.HasPrefix(document.OpenAPI, "3.") {
		t.Errorf("document.OpenAPI: expected 3.x, got '%s'", document.OpenAPI)
	}

	expected := map[string][]string{
		"/tasks":          {"get", "post"},
		"/tasks/{taskID}": {"get", "patch", "delete"},
	}

	for path, methods := range expected {
		operations, exists := document.Paths[path]
		if !exists {
			t.Errorf("path '%s' should be documented, got %s", path, spew.Sdump(document.Paths))
			continue
		}

		for _, m := range methods {
			if _, exists := operations[m]; !exists {
				t.Errorf("operation '%s %s' should be documented", m, path)
			}
		}
	}
}

func TestServeUI(t *testing.T) {
	server := httptest.NewServer(NewHandler())
	defer server.Close()

	res, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected %d, got %d", e, g)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(string(data), "./openapi.json") {
		t.Errorf("ui should load the openapi document")
	}
}
