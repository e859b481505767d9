package task

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bornholm/tasks/internal/adapter/sqlite"
	"github.com/bornholm/tasks/internal/command"
	"github.com/bornholm/tasks/internal/http/handler/api"
	"github.com/pkg/errors"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "todo.db"))

	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", api.NewHandler(store)))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	app := command.NewApp("tasks", "test", Command())
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"tasks"}, args...))

	t.Logf("stderr: %s", stderr.String())

	return stdout.String(), err
}

func TestCommandLifecycle(t *testing.T) {
	server := newTestServer(t)

	output, err := run(t, "task", "create", "--server", server.URL, "--title", "Write the report", "--due-date", "2023-12-31")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(output, "Write the report") {
		t.Errorf("create output: expected task title, got '%s'", output)
	}

	if !strings.Contains(output, "Pending") {
		t.Errorf("create output: expected default status, got '%s'", output)
	}

	output, err = run(t, "task", "update", "--server", server.URL, "--status", "Completed", "1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(output, "Completed") {
		t.Errorf("update output: expected new status, got '%s'", output)
	}

	output, err = run(t, "task", "list", "--server", server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(output, "TITLE") || !strings.Contains(output, "Write the report") {
		t.Errorf("list output: expected table with the task, got '%s'", output)
	}

	if !strings.Contains(output, "ago") && !strings.Contains(output, "now") {
		t.Errorf("list output: expected a humanized creation date, got '%s'", output)
	}

	output, err = run(t, "task", "delete", "--server", server.URL, "1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Task 1 deleted\n", output; e != g {
		t.Errorf("delete output: expected '%s', got '%s'", e, g)
	}

	if _, err := run(t, "task", "show", "--server", server.URL, "1"); err == nil {
		t.Errorf("show after delete: expected an error")
	}
}

func TestCommandConfigFile(t *testing.T) {
	server := newTestServer(t)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(configFile, []byte("server: "+server.URL+"\n"), 0o600); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	output, err := run(t, "task", "list", "--config", configFile, "--json")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "[]", strings.TrimSpace(output); e != g {
		t.Errorf("list output: expected '%s', got '%s'", e, g)
	}
}

func TestCommandUpdateWithoutChanges(t *testing.T) {
	server := newTestServer(t)

	if _, err := run(t, "task", "update", "--server", server.URL, "1"); err == nil {
		t.Errorf("expected an error when no field is given")
	}
}

func TestCommandInvalidTaskID(t *testing.T) {
	server := newTestServer(t)

	if _, err := run(t, "task", "show", "--server", server.URL, "abc"); err == nil {
		t.Errorf("expected an error for a non numeric id")
	}
}
