package context

import (
	"context"
	"net/url"
)

const keyBaseURL contextKey = "baseURL"

// BaseURL returns the public base URL of the service,
// defaulting to "/".
func BaseURL(ctx context.Context) *url.URL {
	baseURL, ok := ctx.Value(keyBaseURL).(*url.URL)
	if !ok || baseURL == nil {
		return &url.URL{Path: "/"}
	}

	clone := *baseURL

	return &clone
}

func SetBaseURL(ctx context.Context, baseURL *url.URL) context.Context {
	return context.WithValue(ctx, keyBaseURL, baseURL)
}
