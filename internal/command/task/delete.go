package task

import (
	"fmt"

	"github.com/bornholm/tasks/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func deleteCommand() *cli.Command {
	flags, before := withFlags()

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a task",
		ArgsUsage: "<id>",
		Flags:     flags,
		Before:    before,
		Action: func(ctx *cli.Context) error {
			taskID, err := getTaskID(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			tasksClient, err := common.GetTasksClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := tasksClient.DeleteTask(ctx.Context, taskID); err != nil {
				return errors.Wrapf(err, "could not delete task %d", taskID)
			}

			_, err = fmt.Fprintf(ctx.App.Writer, "Task %d deleted\n", taskID)

			return errors.WithStack(err)
		},
	}
}
