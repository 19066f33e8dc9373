package htmlkit

import (
	"strings"
	"testing"
)

func TestRawRender(t *testing.T) {
	ctx := Context{}

	tests := []struct {
		name string
		node *Raw
		want string
	}{
		{
			"parts join with a space by default",
			NewRaw("<b>one</b>", "<i>two</i>"),
			"<b>one</b> <i>two</i>",
		},
		{
			"custom separator",
			NewRaw("a", "b", "c").Separator(", "),
			"a, b, c",
		},
		{
			"non-string parts stringified",
			NewRaw("count:", 3),
			"count: 3",
		},
		{
			"escaped content",
			NewRaw("<b>bold</b>").Escaped(),
			"&lt;b&gt;bold&lt;/b&gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.node.Render(ctx)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRawFuncParts(t *testing.T) {
	ctx := Context{Local: Vars{"name": "ada"}}

	got, err := NewRaw("hello", LocalVar("name", "")).Render(ctx)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if want := "hello ada"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRawFuncPartMustReturnString(t *testing.T) {
	part := Func(func(ctx Context) any { return 42 })

	_, err := NewRaw(part).Render(Context{})
	if err == nil {
		t.Fatal("expected error for non-string func result, got nil")
	}
	if !IsStructural(err) {
		t.Errorf("expected ErrStructural, got %v", err)
	}
}

func TestRawRejectsNodeParts(t *testing.T) {
	_, err := NewRaw("before", Div()).Render(Context{})
	if err == nil {
		t.Fatal("expected error for Node part, got nil")
	}
	if !IsStructural(err) {
		t.Errorf("expected ErrStructural, got %v", err)
	}
	if !strings.Contains(err.Error(), "argument 1") {
		t.Errorf("error should name the offending argument: %v", err)
	}
}

func TestRawFormatted(t *testing.T) {
	ctx := Context{
		Global: Vars{"site": Vars{"name": "openbridge"}},
		Local:  Vars{"user": "ada"},
	}

	tests := []struct {
		name string
		node *Raw
		want string
	}{
		{
			"global and local placeholders",
			NewRaw("{local.user} @ {global.site.name}").Formatted(),
			"ada @ openbridge",
		},
		{
			"doubled braces are literal",
			NewRaw("{{not a placeholder}}").Formatted(),
			"{not a placeholder}",
		},
		{
			"formatting off leaves placeholders alone",
			NewRaw("{local.user}"),
			"{local.user}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.node.Render(ctx)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRawFormattedErrors(t *testing.T) {
	tests := []struct {
		name string
		node *Raw
	}{
		{"missing key", NewRaw("{local.absent}").Formatted()},
		{"unknown namespace", NewRaw("{session.user}").Formatted()},
		{"no namespace", NewRaw("{user}").Formatted()},
		{"unterminated placeholder", NewRaw("{local.user").Formatted()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.node.Render(Context{Local: Vars{"user": "ada"}})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !IsContextKey(err) {
				t.Errorf("expected ErrContextKey, got %v", err)
			}
		})
	}
}

func TestRawIndentation(t *testing.T) {
	node := Div(NewRaw("one\ntwo"))

	got, err := node.Render(Context{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if want := "<div>\n  one\n  two\n</div>"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}

	sensitive := Div(NewRaw("one\ntwo").WhitespaceSensitive())
	got, err = sensitive.Render(Context{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if want := "<div>\none\ntwo\n</div>"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRawBuildersDoNotMutate(t *testing.T) {
	base := NewRaw("<x>")
	_ = base.Escaped()
	_ = base.Separator("|")
	_ = base.Formatted()
	_ = base.WhitespaceSensitive()

	got, err := base.Render(Context{})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if want := "<x>"; got != want {
		t.Errorf("builders mutated the receiver: %q, want %q", got, want)
	}
}
