package setup

import (
	"io"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/tasks/internal/config"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
)

// NewLoggerFromConfig returns a logger writing to w in the configured format.
func NewLoggerFromConfig(w io.Writer, conf config.Logger) (*slog.Logger, error) {
	var handler slog.Handler

	switch conf.Format {
	case config.LoggerFormatText, "":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     conf.Level,
			AddSource: true,
		})
	case config.LoggerFormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     conf.Level,
			AddSource: true,
		})
	case config.LoggerFormatTint:
		handler = tint.NewHandler(w, &tint.Options{
			Level:     conf.Level,
			AddSource: true,
		})
	default:
		return nil, errors.Errorf("unknown logger format '%s'", conf.Format)
	}

	return slog.New(slogx.ContextHandler{Handler: handler}), nil
}
