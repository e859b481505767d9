package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/tasks/internal/config"
	"github.com/bornholm/tasks/internal/http"
	"github.com/bornholm/tasks/internal/http/handler/metrics"
	"github.com/bornholm/tasks/internal/http/handler/webui/swagger"
	metricsMiddleware "github.com/bornholm/tasks/internal/http/middleware/metrics"
	"github.com/bornholm/tasks/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	webui, err := getWebUIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure webui handler from config")
	}

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithCORS(conf.HTTP.CORSEnabled),
		http.WithLogger(slog.Default()),
		http.WithMiddleware(metricsMiddleware.Middleware),
		http.WithMount("/api/", api),
		http.WithMount("/metrics/", metrics.NewHandler()),
		http.WithMount("/docs/", swagger.NewHandler()),
		http.WithMount("/", webui),
	}

	if conf.HTTP.Auth.Enabled() {
		options = append(options, http.WithBasicAuth(conf.HTTP.Auth.Username, string(conf.HTTP.Auth.Password)))
	}

	if conf.HTTP.RateLimit.Enabled {
		options = append(options, http.WithMiddleware(ratelimit.Middleware(ratelimit.Options{
			TrustHeaders: conf.HTTP.RateLimit.TrustHeaders,
			Interval:     conf.HTTP.RateLimit.Interval,
			MaxBurst:     conf.HTTP.RateLimit.MaxBurst,
			CacheSize:    conf.HTTP.RateLimit.CacheSize,
			TTL:          conf.HTTP.RateLimit.TTL,
		})))
	}

	server := http.NewServer(options...)

	return server, nil
}
