package task

import (
	"github.com/bornholm/tasks/internal/command/common"
	"github.com/bornholm/tasks/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func updateCommand() *cli.Command {
	flags, before := withFlags(taskFlags(false)...)

	return &cli.Command{
		Name:      "update",
		Usage:     "Update the given fields of a task",
		ArgsUsage: "<id>",
		Flags:     flags,
		Before:    before,
		Action: func(ctx *cli.Context) error {
			taskID, err := getTaskID(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			req := client.UpdateTaskRequest{
				Title:       optionalFlag(ctx, flagTitle),
				Description: optionalFlag(ctx, flagDescription),
				Status:      optionalFlag(ctx, flagStatus),
				DueDate:     optionalFlag(ctx, flagDueDate),
			}

			if req.Changes().Empty() {
				return errors.New("nothing to update, at least one of --title, --description, --status or --due-date is required")
			}

			tasksClient, err := common.GetTasksClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			task, err := tasksClient.UpdateTask(ctx.Context, taskID, req)
			if err != nil {
				return errors.Wrapf(err, "could not update task %d", taskID)
			}

			return errors.WithStack(writeTask(ctx.App.Writer, task))
		},
	}
}
