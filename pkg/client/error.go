package client

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("not found")

// ResponseError is returned when the server answers with
// an unexpected status code.
type ResponseError struct {
	StatusCode int
	Detail     string
}

func (e *ResponseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("unexpected response code %d", e.StatusCode)
	}

	return fmt.Sprintf("unexpected response code %d: %s", e.StatusCode, e.Detail)
}
