package sqlite

import "time"

type Options struct {
	BusyTimeout time.Duration
	MaxRetries  int
	BaseBackoff time.Duration
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		BusyTimeout: 5 * time.Second,
		MaxRetries:  10,
		BaseBackoff: 100 * time.Millisecond,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithBusyTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.BusyTimeout = timeout
	}
}

func WithRetries(maxRetries int, baseBackoff time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.MaxRetries = maxRetries
		opts.BaseBackoff = baseBackoff
	}
}
