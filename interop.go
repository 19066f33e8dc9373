package htmlkit

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// Interop with the ecosystem's other HTML renderers. A templ.Component or a
// gomponents Node can appear anywhere an Item is accepted; its output is
// captured and fed through the surrounding indentation logic like ordinary
// text content.

// renderForeign captures the output of a non-htmlkit renderable child.
// The ok result reports whether item was such a value at all.
func renderForeign(item any, _ Context) (s string, ok bool, err error) {
	switch v := item.(type) {
	case templ.Component:
		var b strings.Builder
		if err := v.Render(context.Background(), &b); err != nil {
			return "", true, err
		}
		return b.String(), true, nil

	case gomponents.Node:
		var b strings.Builder
		if err := v.Render(&b); err != nil {
			return "", true, err
		}
		return b.String(), true, nil

	default:
		return "", false, nil
	}
}

// ToTempl adapts a Node for templ pipelines. The node is rendered with the
// captured htmlkit context when the templ component is executed:
//
//	templ layout() {
//	    @htmlkit.ToTempl(sidebar, ctx)
//	}
func ToTempl(n Node, ctx Context) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		rendered, err := n.Render(ctx)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, rendered)
		return err
	})
}
