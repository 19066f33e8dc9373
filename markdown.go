package htmlkit

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// Markdown is a content node that converts CommonMark source to HTML at
// render time. The source may be a string or a Func returning one. The
// converted markup is forwarded through the standard line indentation
// logic, so a Markdown node participates in whitespace sensitivity like any
// other node.
//
//	htmlkit.Article(htmlkit.NewMarkdown("# Release notes\n\n*fixed stuff*"))
type Markdown struct {
	source any
	md     goldmark.Markdown
}

// NewMarkdown creates a markdown node with the default goldmark converter.
func NewMarkdown(source any) *Markdown {
	return &Markdown{source: source, md: goldmark.New()}
}

// WithConverter returns a copy using a custom-configured goldmark instance
// (extensions, renderer options).
func (m *Markdown) WithConverter(md goldmark.Markdown) *Markdown {
	clone := m.clone()
	clone.md = md
	return clone
}

func (m *Markdown) clone() *Markdown {
	return &Markdown{source: cloneItem(m.source), md: m.md}
}

// Render renders the node with no indentation.
func (m *Markdown) Render(ctx Context) (string, error) {
	return m.RenderIndent(ctx, 0, false)
}

// RenderIndent converts the source and emits the resulting HTML at the
// given indentation level.
func (m *Markdown) RenderIndent(ctx Context, indent int, whitespaceSensitive bool) (string, error) {
	source := m.source
	if f, ok := asFunc(source); ok {
		source = f(ctx)
	}

	text, ok := source.(string)
	if !ok {
		return "", fmt.Errorf("%w: Markdown source must be a string, got %T", ErrStructural, source)
	}

	var buf bytes.Buffer
	if err := m.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("%w: markdown conversion failed: %v", ErrStructural, err)
	}

	return indentLines(strings.TrimRight(buf.String(), "\n"), indent, whitespaceSensitive), nil
}
