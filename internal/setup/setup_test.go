package setup

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/tasks/internal/config"
	"github.com/pkg/errors"
)

func TestNewLoggerFromConfig(t *testing.T) {
	type testCase struct {
		Format      config.LoggerFormat
		ExpectError bool
		Contains    string
	}

	testCases := []testCase{
		{Format: config.LoggerFormatText, Contains: "msg=hello"},
		{Format: config.LoggerFormatJSON, Contains: `"msg":"hello"`},
		{Format: config.LoggerFormatTint, Contains: "hello"},
		{Format: "unknown", ExpectError: true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.Format), func(t *testing.T) {
			var buf bytes.Buffer

			logger, err := NewLoggerFromConfig(&buf, config.Logger{Level: slog.LevelInfo, Format: tc.Format})
			if tc.ExpectError {
				if err == nil {
					t.Fatalf("expected an error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			logger.InfoContext(context.Background(), "hello")
			logger.DebugContext(context.Background(), "filtered")

			if !strings.Contains(buf.String(), tc.Contains) {
				t.Errorf("output: expected to contain '%s', got '%s'", tc.Contains, buf.String())
			}

			if strings.Contains(buf.String(), "filtered") {
				t.Errorf("output: debug record should be filtered")
			}
		})
	}
}

func TestNewGormDatabase(t *testing.T) {
	db, err := newGormDatabase(config.Database{
		DSN:         filepath.Join(t.TempDir(), "todo.db"),
		BusyTimeout: 2 * time.Second,
	}, slog.LevelError)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var timeout int64
	if err := db.Raw("PRAGMA busy_timeout").Scan(&timeout).Error; err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(2000), timeout; e != g {
		t.Errorf("busy_timeout: expected %d, got %d", e, g)
	}

	internalDB, err := db.DB()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, internalDB.Stats().Idle; e != g {
		t.Errorf("idle connections: expected %d, got %d", e, g)
	}
}

func TestGormDSN(t *testing.T) {
	type testCase struct {
		DSN      string
		Expected string
	}

	testCases := []testCase{
		{DSN: "todo.db", Expected: "file:todo.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)"},
		{DSN: "file:todo.db?mode=rwc", Expected: "file:todo.db?mode=rwc&_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)"},
	}

	for _, tc := range testCases {
		t.Run(tc.DSN, func(t *testing.T) {
			if e, g := tc.Expected, gormDSN(config.Database{DSN: tc.DSN, BusyTimeout: 5 * time.Second}); e != g {
				t.Errorf("gormDSN(): expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestNewHTTPServerFromConfig(t *testing.T) {
	ctx := context.Background()

	conf := &config.Config{
		Logger: config.Logger{Level: slog.LevelError, Format: config.LoggerFormatText},
		HTTP: config.HTTP{
			BaseURL:     "/",
			Address:     ":0",
			CORSEnabled: true,
		},
		Storage: config.Storage{
			Database: config.Database{
				Driver:      config.DatabaseDriverSQLite,
				DSN:         filepath.Join(t.TempDir(), "todo.db"),
				BusyTimeout: time.Second,
			},
		},
	}

	server, err := NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	res, err := http.Post(ts.URL+"/api/tasks", "application/json", strings.NewReader(`{"title":"Wired"}`))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected %d, got %d", e, g)
	}

	var task struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}

	if err := json.NewDecoder(res.Body).Decode(&task); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Wired", task.Title; e != g {
		t.Errorf("task.Title: expected '%s', got '%s'", e, g)
	}

	for _, path := range []string{"/", "/metrics/", "/docs/", "/docs/openapi.json"} {
		res, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		body, err := io.ReadAll(res.Body)
		res.Body.Close()
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := http.StatusOK, res.StatusCode; e != g {
			t.Errorf("GET %s: expected status %d, got %d", path, e, g)
		}

		if path == "/" && !strings.Contains(string(body), "Wired") {
			t.Errorf("GET /: expected body to contain the task title")
		}

		if path == "/metrics/" && !strings.Contains(string(body), "tasks_store_operations_total") {
			t.Errorf("GET /metrics/: expected body to expose tasks_store_operations_total")
		}

		if path == "/docs/openapi.json" {
			var document struct {
				Paths map[string]any `json:"paths"`
			}

			if err := json.Unmarshal(body, &document); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if _, exists := document.Paths["/tasks/{taskID}"]; !exists {
				t.Errorf("GET /docs/openapi.json: expected '/tasks/{taskID}' to be documented")
			}
		}
	}
}
