package component

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

type LayoutVModel struct {
	Title string
}

func Layout(vmodel LayoutVModel, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := write(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title></head><body><main>`,
			templ.EscapeString(vmodel.Title),
		)
		if err != nil {
			return errors.WithStack(err)
		}

		if err := body.Render(ctx, w); err != nil {
			return errors.WithStack(err)
		}

		return write(w, `</main></body></html>`)
	})
}
