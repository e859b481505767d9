package webui

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bornholm/tasks/internal/adapter/sqlite"
	"github.com/bornholm/tasks/internal/core/model"
	"github.com/pkg/errors"
)

func TestIndexPage(t *testing.T) {
	ctx := context.Background()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "todo.db"))

	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	titles := []string{"Buy milk", "<script>alert('xss')</script>"}
	for _, title := range titles {
		if _, err := store.CreateTask(ctx, model.NewTask(title, nil, "", nil)); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	server := httptest.NewServer(NewHandler(store))
	defer server.Close()

	res, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected %d, got %d", e, g)
	}

	if g := res.Header.Get("Content-Type"); !strings.HasPrefix(g, "text/html") {
		t.Errorf("Content-Type: expected text/html, got '%s'", g)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	body := string(data)

	if !strings.Contains(body, "Buy milk") {
		t.Errorf("body should contain task title 'Buy milk'")
	}

	if strings.Contains(body, "<script>") {
		t.Errorf("body should not contain unescaped markup")
	}

	if !strings.Contains(body, "&lt;script&gt;") {
		t.Errorf("body should contain escaped task title")
	}

	if strings.Index(body, "&lt;script&gt;") > strings.Index(body, "Buy milk") {
		t.Errorf("newest task should be listed first")
	}
}

func TestUnknownPage(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "todo.db"))

	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	server := httptest.NewServer(NewHandler(store))
	defer server.Close()

	res, err := http.Get(server.URL + "/unknown")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if e, g := http.StatusNotFound, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected %d, got %d", e, g)
	}

	if g := res.Header.Get("Content-Type"); !strings.HasPrefix(g, "text/html") {
		t.Errorf("Content-Type: expected text/html, got '%s'", g)
	}
}
