package task

import (
	"github.com/bornholm/tasks/internal/command/common"
	"github.com/bornholm/tasks/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func createCommand() *cli.Command {
	flags, before := withFlags(taskFlags(true)...)

	return &cli.Command{
		Name:   "create",
		Usage:  "Create a task",
		Flags:  flags,
		Before: before,
		Action: func(ctx *cli.Context) error {
			tasksClient, err := common.GetTasksClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			task, err := tasksClient.CreateTask(ctx.Context, client.CreateTaskRequest{
				Title:       ctx.String(flagTitle),
				Description: optionalFlag(ctx, flagDescription),
				Status:      optionalFlag(ctx, flagStatus),
				DueDate:     optionalFlag(ctx, flagDueDate),
			})
			if err != nil {
				return errors.Wrap(err, "could not create task")
			}

			return errors.WithStack(writeTask(ctx.App.Writer, task))
		},
	}
}
