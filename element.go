package htmlkit

import (
	"fmt"
	"reflect"
	"strings"
)

// indentWidth is the number of spaces added per nesting level.
const indentWidth = 2

// Node is one renderable occurrence in a document tree.
//
// Render produces the node's markup with no leading indentation;
// RenderIndent is the full contract, prefixing each emitted line with indent
// spaces unless whitespaceSensitive is set. Sensitivity only ever turns on
// going down a tree: once a node renders sensitively, every descendant does
// too, and no indentation or newlines are inserted from that point on.
type Node interface {
	Render(ctx Context) (string, error)
	RenderIndent(ctx Context, indent int, whitespaceSensitive bool) (string, error)
}

// Item is anything an element accepts as a child: a Node, a string, a Func
// invoked at render time, a slice of further items, a templ.Component or
// gomponents Node (see interop.go), or any other value, which is
// stringified.
type Item = any

// Element represents one HTML tag occurrence.
//
// Elements built by the tags.go constructors carry their tag string
// explicitly; there is no reflective naming. An Element is immutable once
// built: the builder methods (WithAttrs, WithData, Escaped,
// WhitespaceSensitive) and the clone operation With all return modified deep
// copies and leave the receiver untouched. That contract is what makes it
// safe to declare templates once as package-level data and render them from
// many requests concurrently.
type Element struct {
	tag         string
	selfClosing bool
	escape      bool
	sensitive   bool
	doctype     bool
	attrs       Attrs
	data        Attrs
	children    []Item
}

// NewElement creates an element with an explicit tag string.
//
// Prefer the per-tag constructors in tags.go; NewElement exists for custom
// elements (web components, unusual namespaces).
func NewElement(tag string, children ...Item) *Element {
	return &Element{tag: tag, children: children}
}

// NewVoidElement creates a self-closing element with an explicit tag string.
// Self-closing elements can never hold children.
func NewVoidElement(tag string) *Element {
	return &Element{tag: tag, selfClosing: true}
}

// Tag returns the element's tag string.
func (e *Element) Tag() string {
	return e.tag
}

// SelfClosing reports whether the element renders as <tag/> with no
// children.
func (e *Element) SelfClosing() bool {
	return e.selfClosing
}

// WithAttrs returns a copy of the element with attrs merged over its current
// attributes: matching keys are replaced, new keys appended, declaration
// order preserved.
func (e *Element) WithAttrs(attrs Attrs) *Element {
	clone := e.clone()
	clone.attrs = clone.attrs.merge(attrs)
	return clone
}

// WithData returns a copy of the element with data merged over its current
// data-attributes.
func (e *Element) WithData(data Attrs) *Element {
	clone := e.clone()
	clone.data = clone.data.merge(data)
	return clone
}

// Escaped returns a copy whose fully-rendered content will be HTML-escaped
// as one block after the children are rendered, so escaping applies to the
// final text rather than to markup fragments individually.
func (e *Element) Escaped() *Element {
	clone := e.clone()
	clone.escape = true
	return clone
}

// WhitespaceSensitive returns a copy that suppresses all inserted
// indentation and newlines for itself and, transitively, every descendant.
func (e *Element) WhitespaceSensitive() *Element {
	clone := e.clone()
	clone.sensitive = true
	return clone
}

// Overrides holds the replacement values for a clone operation. Children,
// Attrs and Data replace the template's values wholesale; the flags are
// taken as given (an omitted flag resets to false, exactly like a fresh
// construction).
type Overrides struct {
	Children            []Item
	Attrs               Attrs
	Data                Attrs
	EscapeContent       bool
	WhitespaceSensitive bool
}

// With clones the element and replaces its children, attributes,
// data-attributes and flags with the override values. The receiver - the
// template - is never touched, so the same template can be cloned from many
// concurrent render calls.
//
// Cloning a self-closing element with one or more children returns
// ErrStructural.
func (e *Element) With(o Overrides) (*Element, error) {
	if e.selfClosing && len(o.Children) > 0 {
		return nil, fmt.Errorf("%w: self-closing element <%s> cannot have children", ErrStructural, e.tag)
	}

	clone := e.clone()
	clone.children = cloneItems(o.Children)
	clone.attrs = o.Attrs.clone()
	clone.data = o.Data.clone()
	clone.escape = o.EscapeContent
	clone.sensitive = o.WhitespaceSensitive
	return clone, nil
}

// Render renders the element with no indentation.
func (e *Element) Render(ctx Context) (string, error) {
	return e.RenderIndent(ctx, 0, false)
}

// RenderIndent renders the element at the given indentation level.
//
// Self-closing elements emit <tag attrs data/> and never recurse. Everything
// else emits the opening tag, the children (each on its own line, indented
// one level deeper, unless whitespace sensitivity is in effect), then the
// closing tag. If the element is marked Escaped, the rendered child content
// is escaped as one block before being placed between the tags.
func (e *Element) RenderIndent(ctx Context, indent int, whitespaceSensitive bool) (string, error) {
	var b strings.Builder

	if e.doctype {
		b.WriteString("<!DOCTYPE html>\n")
	}

	attrsString, err := e.headAttributes(ctx)
	if err != nil {
		return "", err
	}

	selfIndent := ""
	if !whitespaceSensitive {
		selfIndent = strings.Repeat(" ", indent)
	}

	if e.selfClosing {
		b.WriteString(selfIndent)
		b.WriteString("<")
		b.WriteString(e.tag)
		b.WriteString(attrsString)
		b.WriteString("/>")
		return b.String(), nil
	}

	b.WriteString(selfIndent)
	b.WriteString("<")
	b.WriteString(e.tag)
	b.WriteString(attrsString)
	b.WriteString(">")

	content := ""
	if len(e.children) > 0 {
		var cb strings.Builder
		if !whitespaceSensitive {
			cb.WriteString("\n")
		}

		// Sensitivity is inherited downwards: this element's own placement
		// already happened with the incoming flag, but its children see the
		// combined one.
		rendered, err := renderList(e.children, ctx, indent+indentWidth, whitespaceSensitive || e.sensitive)
		if err != nil {
			return "", err
		}
		cb.WriteString(rendered)

		if !whitespaceSensitive {
			cb.WriteString("\n")
		}
		content = cb.String()
	}

	if e.escape {
		content = EscapeText(content)
	}
	b.WriteString(content)

	b.WriteString(selfIndent)
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteString(">")

	return b.String(), nil
}

// headAttributes encodes the attribute and data-attribute strings that go in
// the opening tag, each prefixed by a space when non-empty.
func (e *Element) headAttributes(ctx Context) (string, error) {
	var b strings.Builder

	if len(e.attrs) > 0 {
		encoded, err := EncodeAttributes(e.attrs, "", ".", ctx, false)
		if err != nil {
			return "", err
		}
		if encoded != "" {
			b.WriteString(" ")
			b.WriteString(encoded)
		}
	}

	if len(e.data) > 0 {
		encoded, err := EncodeAttributes(e.data, "", ".", ctx, true)
		if err != nil {
			return "", err
		}
		if encoded != "" {
			b.WriteString(" ")
			b.WriteString(encoded)
		}
	}

	return b.String(), nil
}

func (e *Element) clone() *Element {
	return &Element{
		tag:         e.tag,
		selfClosing: e.selfClosing,
		escape:      e.escape,
		sensitive:   e.sensitive,
		doctype:     e.doctype,
		attrs:       e.attrs.clone(),
		data:        e.data.clone(),
		children:    cloneItems(e.children),
	}
}

// cloneItem deep-copies a child or attribute value. Nodes clone their whole
// subtree; slices copy element-wise. Funcs and scalars are shared - Funcs
// are stateless resolvers and scalars are immutable.
func cloneItem(item any) any {
	switch v := item.(type) {
	case *Element:
		return v.clone()
	case *Raw:
		return v.clone()
	case *JSONData:
		return v.clone()
	case *Markdown:
		return v.clone()
	case Attrs:
		return v.clone()
	case []Item:
		return cloneItems(v)
	default:
		return item
	}
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	cloned := make([]Item, len(items))
	for i, item := range items {
		cloned[i] = cloneItem(item)
	}
	return cloned
}

// renderItem resolves one child into output text.
//
// Nodes recurse; Funcs are invoked and their result resolved again; slices
// render element-wise joined by newlines when not whitespace sensitive;
// everything else is stringified and fed through the line indentation logic.
func renderItem(item Item, ctx Context, indent int, whitespaceSensitive bool) (string, error) {
	switch v := item.(type) {
	case nil:
		return "", nil

	case Node:
		return v.RenderIndent(ctx, indent, whitespaceSensitive)

	case Func:
		return renderItem(v(ctx), ctx, indent, whitespaceSensitive)

	case string:
		return indentLines(v, indent, whitespaceSensitive), nil

	default:
		if f, ok := asFunc(item); ok {
			return renderItem(f(ctx), ctx, indent, whitespaceSensitive)
		}

		if s, ok, err := renderForeign(v, ctx); ok {
			if err != nil {
				return "", err
			}
			return indentLines(s, indent, whitespaceSensitive), nil
		}

		rv := reflect.ValueOf(item)
		if rv.Kind() == reflect.Slice {
			items := make([]Item, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				items[i] = rv.Index(i).Interface()
			}
			return renderList(items, ctx, indent, whitespaceSensitive)
		}

		return indentLines(fmt.Sprint(item), indent, whitespaceSensitive), nil
	}
}

// asFunc normalizes the two spellings of a render-time resolver: the named
// Func type and a bare func literal with the same signature.
func asFunc(item any) (Func, bool) {
	switch f := item.(type) {
	case Func:
		return f, true
	case func(ctx Context) any:
		return Func(f), true
	default:
		return nil, false
	}
}

// renderList renders children in order, separating them with a newline when
// not whitespace sensitive.
func renderList(items []Item, ctx Context, indent int, whitespaceSensitive bool) (string, error) {
	var b strings.Builder

	for index, item := range items {
		if index != 0 && !whitespaceSensitive {
			b.WriteString("\n")
		}

		rendered, err := renderItem(item, ctx, indent, whitespaceSensitive)
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
	}

	return b.String(), nil
}

// indentLines prefixes every line of s with indent spaces. Sensitivity
// passes s through untouched.
func indentLines(s string, indent int, whitespaceSensitive bool) string {
	if whitespaceSensitive || s == "" {
		return s
	}

	pad := strings.Repeat(" ", indent)
	var b strings.Builder
	for _, line := range strings.SplitAfter(s, "\n") {
		if line == "" {
			// SplitAfter yields a trailing empty piece when s ends in a
			// newline; there is no line to indent there.
			continue
		}
		b.WriteString(pad)
		b.WriteString(line)
	}
	return b.String()
}
