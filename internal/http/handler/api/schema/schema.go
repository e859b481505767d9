package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed *.json
var files embed.FS

type Name string

const (
	TaskCreate Name = "task_create.json"
	TaskUpdate Name = "task_update.json"
)

var (
	compileOnce sync.Once
	compiled    map[Name]*jsonschema.Schema
	compileErr  error
)

func compileAll() (map[Name]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		names := []Name{TaskCreate, TaskUpdate}

		for _, n := range names {
			data, err := files.ReadFile(string(n))
			if err != nil {
				compileErr = errors.WithStack(err)
				return
			}

			if err := compiler.AddResource(string(n), bytes.NewReader(data)); err != nil {
				compileErr = errors.Wrapf(err, "could not add schema resource '%s'", n)
				return
			}
		}

		schemas := make(map[Name]*jsonschema.Schema, len(names))

		for _, n := range names {
			s, err := compiler.Compile(string(n))
			if err != nil {
				compileErr = errors.Wrapf(err, "could not compile schema '%s'", n)
				return
			}

			schemas[n] = s
		}

		compiled = schemas
	})
	if compileErr != nil {
		return nil, errors.WithStack(compileErr)
	}

	return compiled, nil
}

// ValidationError is returned when a payload does not match its schema.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Reasons, "; ")
}

// Validate checks the raw JSON payload against the named schema.
// It returns a *ValidationError when the payload is malformed or invalid.
func Validate(name Name, data []byte) error {
	schemas, err := compileAll()
	if err != nil {
		return errors.WithStack(err)
	}

	s, exists := schemas[name]
	if !exists {
		return errors.Errorf("unknown schema '%s'", name)
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return errors.WithStack(&ValidationError{Reasons: []string{"malformed JSON payload"}})
	}

	if err := s.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return errors.WithStack(&ValidationError{Reasons: collectReasons(validationErr)})
		}

		return errors.WithStack(err)
	}

	return nil
}

func collectReasons(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}

		return []string{fmt.Sprintf("%s: %s", location, err.Message)}
	}

	reasons := make([]string, 0, len(err.Causes))
	for _, c := range err.Causes {
		reasons = append(reasons, collectReasons(c)...)
	}

	return reasons
}
