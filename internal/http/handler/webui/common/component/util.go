package component

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/tasks/internal/http/context"
	"github.com/pkg/errors"
)

// BaseURL returns the given path resolved against the public base URL.
func BaseURL(ctx context.Context, path string) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	baseURL.Path = strings.TrimSuffix(baseURL.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	return templ.SafeURL(baseURL.String())
}

func write(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
