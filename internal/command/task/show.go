package task

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bornholm/tasks/internal/command/common"
	"github.com/bornholm/tasks/internal/core/model"
	"github.com/bornholm/tasks/pkg/client"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func showCommand() *cli.Command {
	flags, before := withFlags(
		&cli.BoolFlag{
			Name:  flagJSON,
			Usage: "Output the task as JSON",
		},
	)

	return &cli.Command{
		Name:      "show",
		Usage:     "Show a task",
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

			task, err := tasksClient.GetTask(ctx.Context, taskID)
			if err != nil {
				return errors.Wrapf(err, "could not retrieve task %d", taskID)
			}

			if ctx.Bool(flagJSON) {
				return errors.WithStack(writeJSON(ctx.App.Writer, task))
			}

			return errors.WithStack(writeTask(ctx.App.Writer, task))
		},
	}
}

func getTaskID(ctx *cli.Context) (model.TaskID, error) {
	raw := ctx.Args().First()
	if raw == "" {
		return 0, errors.New("missing task id argument")
	}

	taskID, err := model.ParseTaskID(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid task id '%s'", raw)
	}

	return taskID, nil
}

func writeTask(w io.Writer, task *client.Task) error {
	_, err := fmt.Fprintf(w,
		"ID:          %d\nTitle:       %s\nDescription: %s\nStatus:      %s\nDue date:    %s\nCreated:     %s (%s)\n",
		task.ID,
		task.Title,
		valueOrDash(task.Description),
		task.Status,
		valueOrDash(task.DueDate),
		humanize.Time(task.CreatedAt),
		task.CreatedAt.Format("2006-01-02 15:04:05"),
	)

	return errors.WithStack(err)
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	return errors.WithStack(encoder.Encode(value))
}

func valueOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}

	return *s
}
