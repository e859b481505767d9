package component

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

type LinkItem struct {
	Label string
	URL   templ.SafeURL
}

type ErrorPageVModel struct {
	Message string
	Links   []LinkItem
}

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<h1>%s</h1>`, templ.EscapeString(vmodel.Message)); err != nil {
			return errors.WithStack(err)
		}

		if len(vmodel.Links) == 0 {
			return nil
		}

		if err := write(w, `<ul>`); err != nil {
			return errors.WithStack(err)
		}

		for _, l := range vmodel.Links {
			if err := write(w, `<li><a href="%s">%s</a></li>`, templ.EscapeString(string(l.URL)), templ.EscapeString(l.Label)); err != nil {
				return errors.WithStack(err)
			}
		}

		return write(w, `</ul>`)
	})

	return Layout(LayoutVModel{Title: vmodel.Message}, body)
}
