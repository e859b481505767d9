package common

import (
	"net/url"

	"github.com/bornholm/tasks/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramConfig   = "config"
	paramServer   = "server"
	paramUsername = "username"
	paramPassword = "password"
)

var (
	flagConfig = &cli.StringFlag{
		Name:    paramConfig,
		Aliases: []string{"c"},
		EnvVars: []string{"TASKS_CLI_CONFIG"},
		Usage:   "YAML configuration file providing the flags values",
	}
	flagServer = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		EnvVars: []string{"TASKS_CLI_SERVER"},
		Value:   "http://localhost:8000",
		Usage:   "Tasks server base url",
	})
	flagUsername = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramUsername,
		EnvVars: []string{"TASKS_CLI_USERNAME"},
		Usage:   "Basic auth username",
	})
	flagPassword = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramPassword,
		EnvVars: []string{"TASKS_CLI_PASSWORD"},
		Usage:   "Basic auth password",
	})
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagConfig,
		flagServer,
		flagUsername,
		flagPassword,
	}, flags...)
}

// LoadConfig fills the flags not set on the command line
// from the YAML file named by --config, if any.
func LoadConfig(flags []cli.Flag) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		if ctx.String(paramConfig) == "" {
			return nil
		}

		before := altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc(paramConfig))

		if err := before(ctx); err != nil {
			return errors.Wrap(err, "could not load configuration file")
		}

		return nil
	}
}

func GetTasksClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse server url '%s'", rawServerURL)
	}

	if username := ctx.String(paramUsername); username != "" {
		serverURL.User = url.UserPassword(username, ctx.String(paramPassword))
	}

	return client.New(
		client.WithBaseURL(serverURL),
	), nil
}
