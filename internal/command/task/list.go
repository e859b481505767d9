package task

import (
	"fmt"
	"text/tabwriter"

	"github.com/bornholm/tasks/internal/command/common"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func listCommand() *cli.Command {
	flags, before := withFlags(
		&cli.BoolFlag{
			Name:  flagJSON,
			Usage: "Output tasks as JSON",
		},
	)

	return &cli.Command{
		Name:   "list",
		Usage:  "List tasks, newest first",
		Flags:  flags,
		Before: before,
		Action: func(ctx *cli.Context) error {
			client, err := common.GetTasksClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			tasks, err := client.ListTasks(ctx.Context)
			if err != nil {
				return errors.Wrap(err, "could not list tasks")
			}

			if ctx.Bool(flagJSON) {
				return errors.WithStack(writeJSON(ctx.App.Writer, tasks))
			}

			w := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tDUE\tCREATED")

			for _, t := range tasks {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Status, valueOrDash(t.DueDate), humanize.Time(t.CreatedAt))
			}

			if err := w.Flush(); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
