package task

import (
	"github.com/bornholm/tasks/internal/command/common"
	"github.com/urfave/cli/v2"
)

const (
	flagTitle       = "title"
	flagDescription = "description"
	flagStatus      = "status"
	flagDueDate     = "due-date"
	flagJSON        = "json"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "task",
		Usage: "Manage tasks",
		Subcommands: []*cli.Command{
			listCommand(),
			showCommand(),
			createCommand(),
			updateCommand(),
			deleteCommand(),
		},
	}
}

func withFlags(flags ...cli.Flag) ([]cli.Flag, cli.BeforeFunc) {
	all := common.WithCommonFlags(flags...)
	return all, common.LoadConfig(all)
}

func taskFlags(required bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     flagTitle,
			Aliases:  []string{"t"},
			Usage:    "Task title",
			Required: required,
		},
		&cli.StringFlag{
			Name:    flagDescription,
			Aliases: []string{"d"},
			Usage:   "Task description",
		},
		&cli.StringFlag{
			Name:  flagStatus,
			Usage: "Task status",
		},
		&cli.StringFlag{
			Name:  flagDueDate,
			Usage: "Task due date",
		},
	}
}

func optionalFlag(ctx *cli.Context, name string) *string {
	if !ctx.IsSet(name) {
		return nil
	}

	value := ctx.String(name)

	return &value
}
