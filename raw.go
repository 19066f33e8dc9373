package htmlkit

import (
	"fmt"
	"strings"
)

// Raw is a tagless fragment for hand-made markup.
//
// Its parts - strings, or Funcs returning strings - are joined with a
// separator (a single space by default), optionally run through context
// formatting, optionally escaped, and then fed through the same line
// indentation logic as ordinary text content.
//
// Embedding a Node in Raw content is rejected as ErrStructural: a Node
// inside a literal-markup fragment is ambiguous between "splice this
// subtree" and "show this markup", so the caller must render it explicitly
// first.
type Raw struct {
	parts     []any
	separator string
	escape    bool
	sensitive bool
	format    bool
}

// NewRaw creates a raw fragment from strings and Funcs. The default
// separator between parts is a single space.
func NewRaw(parts ...any) *Raw {
	return &Raw{parts: parts, separator: " "}
}

// Separator returns a copy joining its parts with sep instead of a space.
func (r *Raw) Separator(sep string) *Raw {
	clone := r.clone()
	clone.separator = sep
	return clone
}

// Escaped returns a copy whose joined (and formatted) content is
// HTML-escaped before emission.
func (r *Raw) Escaped() *Raw {
	clone := r.clone()
	clone.escape = true
	return clone
}

// WhitespaceSensitive returns a copy that emits its content without any
// indentation handling.
func (r *Raw) WhitespaceSensitive() *Raw {
	clone := r.clone()
	clone.sensitive = true
	return clone
}

// Formatted returns a copy with context formatting enabled: {global.path}
// and {local.path} placeholders in the joined content are substituted with
// dot-path lookups against the render context, and {{ / }} escape literal
// braces. A placeholder whose key resolves nowhere is ErrContextKey.
func (r *Raw) Formatted() *Raw {
	clone := r.clone()
	clone.format = true
	return clone
}

func (r *Raw) clone() *Raw {
	return &Raw{
		parts:     cloneItems(r.parts),
		separator: r.separator,
		escape:    r.escape,
		sensitive: r.sensitive,
		format:    r.format,
	}
}

// Render renders the fragment with no indentation.
func (r *Raw) Render(ctx Context) (string, error) {
	return r.RenderIndent(ctx, 0, false)
}

// RenderIndent renders the fragment at the given indentation level.
func (r *Raw) RenderIndent(ctx Context, indent int, whitespaceSensitive bool) (string, error) {
	joined := make([]string, 0, len(r.parts))

	for index, part := range r.parts {
		if _, ok := part.(Node); ok {
			return "", fmt.Errorf("%w: cannot render a Node inside Raw content (argument %d)", ErrStructural, index)
		}

		if f, ok := asFunc(part); ok {
			s, ok := f(ctx).(string)
			if !ok {
				return "", fmt.Errorf("%w: non-string value returned by func in Raw argument %d", ErrStructural, index)
			}
			joined = append(joined, s)
			continue
		}

		switch v := part.(type) {
		case string:
			joined = append(joined, v)
		default:
			joined = append(joined, fmt.Sprint(v))
		}
	}

	rendered := strings.Join(joined, r.separator)

	if r.format {
		formatted, err := formatContent(rendered, ctx)
		if err != nil {
			return "", err
		}
		rendered = formatted
	}

	if r.escape {
		rendered = EscapeText(rendered)
	}

	return indentLines(rendered, indent, whitespaceSensitive || r.sensitive), nil
}

// formatContent substitutes {global.path} and {local.path} placeholders.
// {{ and }} escape literal braces. Unknown namespaces and unterminated
// placeholders are ErrContextKey - formatted content is expected to be
// fully resolvable, unlike plain variable lookups which default on miss.
func formatContent(s string, ctx Context) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}

			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated placeholder in formatted content", ErrContextKey)
			}
			placeholder := s[i+1 : i+end]
			i += end

			value, err := resolvePlaceholder(placeholder, ctx)
			if err != nil {
				return "", err
			}
			b.WriteString(value)

		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			b.WriteByte('}')

		default:
			b.WriteByte(s[i])
		}
	}

	return b.String(), nil
}

// missingKey marks a lookup miss so that nil values stored in a context are
// still distinguishable from absent ones.
type missingKey struct{}

func resolvePlaceholder(placeholder string, ctx Context) (string, error) {
	namespace, key, ok := strings.Cut(placeholder, ".")
	if !ok {
		return "", fmt.Errorf("%w: placeholder %q must be global.<path> or local.<path>", ErrContextKey, placeholder)
	}

	var vars Vars
	switch namespace {
	case "global":
		vars = ctx.Global
	case "local":
		vars = ctx.Local
	default:
		return "", fmt.Errorf("%w: unknown namespace %q in placeholder %q", ErrContextKey, namespace, placeholder)
	}

	value := vars.Lookup(key, missingKey{})
	if _, missing := value.(missingKey); missing {
		return "", fmt.Errorf("%w: key %q not found in %s context", ErrContextKey, key, namespace)
	}
	return fmt.Sprint(value), nil
}
