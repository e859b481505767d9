package component

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/bornholm/tasks/internal/core/model"
	common "github.com/bornholm/tasks/internal/http/handler/webui/common/component"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

type IndexPageVModel struct {
	Tasks []model.PersistedTask
}

func IndexPage(vmodel IndexPageVModel) templ.Component {
	return common.Layout(common.LayoutVModel{Title: "Tasks"}, taskList(vmodel))
}

func taskList(vmodel IndexPageVModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		apiURL := common.BaseURL(ctx, "/api/tasks")

		if _, err := fmt.Fprintf(w, `<h1>Tasks</h1><p><a href="%s">JSON</a></p>`, templ.EscapeString(string(apiURL))); err != nil {
			return errors.WithStack(err)
		}

		if len(vmodel.Tasks) == 0 {
			_, err := io.WriteString(w, `<p>No tasks yet.</p>`)
			return errors.WithStack(err)
		}

		if _, err := io.WriteString(w, `<table><thead><tr><th>#</th><th>Title</th><th>Status</th><th>Due</th><th>Created</th></tr></thead><tbody>`); err != nil {
			return errors.WithStack(err)
		}

		for _, t := range vmodel.Tasks {
			if err := taskRow(t).Render(ctx, w); err != nil {
				return errors.WithStack(err)
			}
		}

		_, err := io.WriteString(w, `</tbody></table>`)
		return errors.WithStack(err)
	})
}

func taskRow(t model.PersistedTask) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := templ.EscapeString(t.Title)
		if t.Description != nil && *t.Description != "" {
			title = fmt.Sprintf(`<span title="%s">%s</span>`, templ.EscapeString(*t.Description), title)
		}

		_, err := fmt.Fprintf(w,
			`<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td><time datetime="%s">%s</time></td></tr>`,
			t.ID,
			title,
			templ.EscapeString(t.Status),
			templ.EscapeString(optional(t.DueDate)),
			t.CreatedAt.UTC().Format(time.RFC3339),
			humanize.Time(t.CreatedAt),
		)

		return errors.WithStack(err)
	})
}

func optional(s *string) string {
	if s == nil {
		return "-"
	}

	return *s
}
