package http

import (
	"log/slog"
	"net/http"
	"time"
)

type BasicAuth struct {
	Username string
	Password string
}

type Middleware func(http.Handler) http.Handler

type Options struct {
	Address         string
	BaseURL         string
	BasicAuth       *BasicAuth
	CORS            bool
	Logger          *slog.Logger
	ShutdownTimeout time.Duration
	Mounts          map[string]http.Handler
	Middlewares     []Middleware
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:         ":8000",
		BaseURL:         "",
		CORS:            true,
		Logger:          slog.Default(),
		ShutdownTimeout: 10 * time.Second,
		Mounts:          map[string]http.Handler{},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

func WithBasicAuth(username, password string) OptionFunc {
	return func(opts *Options) {
		opts.BasicAuth = &BasicAuth{
			Username: username,
			Password: password,
		}
	}
}

func WithCORS(enabled bool) OptionFunc {
	return func(opts *Options) {
		opts.CORS = enabled
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithMiddleware appends a middleware applied to every mount.
// Middlewares run in the order they were added.
func WithMiddleware(middleware Middleware) OptionFunc {
	return func(opts *Options) {
		opts.Middlewares = append(opts.Middlewares, middleware)
	}
}
