package htmlkit

import (
	"strings"
	"testing"
)

func TestElementRender(t *testing.T) {
	ctx := Context{}

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			"nested elements indent two spaces per level",
			Div(H1("Title"), P("Body")),
			"<div>\n  <h1>\n    Title\n  </h1>\n  <p>\n    Body\n  </p>\n</div>",
		},
		{
			"empty element renders adjacent tags",
			Div(),
			"<div></div>",
		},
		{
			"self-closing element",
			Img().WithAttrs(Attrs{{"src", "/x.png"}}),
			"<img src='/x.png'/>",
		},
		{
			"attributes and data-attributes",
			Div().WithAttrs(Attrs{{"class", "card"}}).WithData(Attrs{{"nodeId", "7"}}),
			"<div class='card' data-node-id='7'></div>",
		},
		{
			"multiline string child indents every line",
			Pre("line one\nline two"),
			"<pre>\n  line one\n  line two\n</pre>",
		},
		{
			"nil child renders as nothing",
			Div(nil),
			"<div>\n\n</div>",
		},
		{
			"slice child renders element-wise",
			Ul([]Item{Li("a"), Li("b")}),
			"<ul>\n  <li>\n    a\n  </li>\n  <li>\n    b\n  </li>\n</ul>",
		},
		{
			"string slice child",
			Div([]string{"a", "b"}),
			"<div>\n  a\n  b\n</div>",
		},
		{
			"non-string scalar child stringified",
			Span(42),
			"<span>\n  42\n</span>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.node.Render(ctx)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestElementRenderIndent(t *testing.T) {
	got, err := Span("x").RenderIndent(Context{}, 4, false)
	if err != nil {
		t.Fatalf("RenderIndent error: %v", err)
	}
	if want := "    <span>\n      x\n    </span>"; got != want {
		t.Errorf("RenderIndent = %q, want %q", got, want)
	}
}

func TestElementFuncChild(t *testing.T) {
	tpl := H1(LocalVar("title", "untitled"))

	got, err := tpl.Render(Context{Local: Vars{"title": "Hello"}})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if want := "<h1>\n  Hello\n</h1>"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}

	got, err = tpl.Render(Context{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if want := "<h1>\n  untitled\n</h1>"; got != want {
		t.Errorf("Render with missing key = %q, want %q", got, want)
	}
}

func TestElementEscaped(t *testing.T) {
	node := Span("<script>alert(1)</script>").Escaped()

	got, err := node.Render(Context{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(got, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Errorf("escaped content missing from %q", got)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("unescaped markup leaked into %q", got)
	}
}

func TestElementWhitespaceSensitive(t *testing.T) {
	// The marked element still participates in its parent's layout, but no
	// indentation or newlines are inserted below it.
	node := Div(Pre(Code("if x {\n  y()\n}")).WhitespaceSensitive())

	got, err := node.Render(Context{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	want := "<div>\n  <pre>\n<code>if x {\n  y()\n}</code>\n  </pre>\n</div>"
	if got != want {
		t.Errorf("Render =\n%q\nwant\n%q", got, want)
	}
}

func TestElementRenderWhitespaceSensitiveTree(t *testing.T) {
	got, err := Div(Span("a"), Span("b")).RenderIndent(Context{}, 0, true)
	if err != nil {
		t.Fatalf("RenderIndent error: %v", err)
	}
	if want := "<div><span>a</span><span>b</span></div>"; got != want {
		t.Errorf("RenderIndent = %q, want %q", got, want)
	}
}

func TestPageDoctype(t *testing.T) {
	got, err := Page(Body()).Render(Context{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.HasPrefix(got, "<!DOCTYPE html>\n<html>") {
		t.Errorf("missing doctype prefix in %q", got)
	}
}

func TestElementWithClonesTemplate(t *testing.T) {
	tpl := Div(LocalVar("body", "")).WithAttrs(Attrs{{"class", "card"}})

	before, err := tpl.Render(Context{Local: Vars{"body": "original"}})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	clone, err := tpl.With(Overrides{
		Children: []Item{"replaced"},
		Attrs:    Attrs{{"id", "c1"}},
	})
	if err != nil {
		t.Fatalf("With error: %v", err)
	}

	cloned, err := clone.Render(Context{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if want := "<div id='c1'>\n  replaced\n</div>"; cloned != want {
		t.Errorf("clone render = %q, want %q", cloned, want)
	}

	after, err := tpl.Render(Context{Local: Vars{"body": "original"}})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if after != before {
		t.Errorf("template changed after cloning:\nbefore %q\nafter  %q", before, after)
	}
}

func TestElementWithResetsFlags(t *testing.T) {
	tpl := Span("x").Escaped().WhitespaceSensitive()

	clone, err := tpl.With(Overrides{Children: []Item{"<b>"}})
	if err != nil {
		t.Fatalf("With error: %v", err)
	}

	got, err := clone.Render(Context{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if want := "<span>\n  <b>\n</span>"; got != want {
		t.Errorf("clone render = %q, want %q", got, want)
	}
}

func TestElementWithSelfClosingRejectsChildren(t *testing.T) {
	_, err := Img().With(Overrides{Children: []Item{"x"}})
	if err == nil {
		t.Fatal("expected error cloning a void element with children, got nil")
	}
	if !IsStructural(err) {
		t.Errorf("expected ErrStructural, got %v", err)
	}

	if _, err := Img().With(Overrides{Attrs: Attrs{{"src", "/x.png"}}}); err != nil {
		t.Errorf("cloning a void element without children should succeed, got %v", err)
	}
}

func TestElementBuildersDoNotMutate(t *testing.T) {
	base := Div()
	_ = base.WithAttrs(Attrs{{"class", "a"}})
	_ = base.WithData(Attrs{{"k", "v"}})
	_ = base.Escaped()
	_ = base.WhitespaceSensitive()

	got, err := base.Render(Context{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if want := "<div></div>"; got != want {
		t.Errorf("builders mutated the receiver: %q, want %q", got, want)
	}
}

func TestScriptAndStyleDefaults(t *testing.T) {
	got, err := Script().Render(Context{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if want := "<script type='text/javascript'></script>"; got != want {
		t.Errorf("Script() = %q, want %q", got, want)
	}

	got, err = Style().Render(Context{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if want := "<style type='text/css'></style>"; got != want {
		t.Errorf("Style() = %q, want %q", got, want)
	}

	got, err = Form().WithAttrs(Attrs{{"action", "/save"}}).Render(Context{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if want := "<form method='POST' action='/save'></form>"; got != want {
		t.Errorf("Form() = %q, want %q", got, want)
	}
}
