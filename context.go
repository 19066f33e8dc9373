package htmlkit

import "strings"

// Vars is a read-only namespace of values available while rendering.
//
// Nested maps are addressed with dot-path keys: Lookup("a.b.c") descends
// through Vars/map values the same way chained index lookups would, returning
// the supplied default whenever any segment is missing. Lookups never fail.
type Vars map[string]any

// Lookup resolves a dot-path key against the namespace.
//
// Each segment must resolve to a nested Vars or map[string]any for descent to
// continue; a missing segment (or a non-map in the middle of the path) yields
// def.
//
//	v := Vars{"user": Vars{"name": "ada"}}
//	v.Lookup("user.name", "")   // "ada"
//	v.Lookup("user.email", "-") // "-"
func (v Vars) Lookup(key string, def any) any {
	segments := strings.Split(key, ".")

	current := v
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment]
		if !ok {
			return def
		}

		switch m := next.(type) {
		case Vars:
			current = m
		case map[string]any:
			current = Vars(m)
		default:
			return def
		}
	}

	value, ok := current[segments[len(segments)-1]]
	if !ok {
		return def
	}
	return value
}

// Context carries the two namespaces threaded through every render call.
//
// Global holds page-wide data (feature flags, locale); Local holds data a
// parent sets up for one specific template render ("children", "title").
// The renderer never mutates either namespace - a component only ever builds
// a fresh Local for its own template.
type Context struct {
	Global Vars
	Local  Vars
}

// Func is a render-time value resolver.
//
// Funcs can appear as element children and as attribute values; they are
// invoked with the render Context and their result is resolved again
// recursively (so a Func may return a string, a Node, a list, nested Attrs,
// or another Func).
type Func func(ctx Context) any

// GlobalVar returns a Func resolving a dot-path key against the global
// namespace at render time.
//
//	htmlkit.Div(htmlkit.GlobalVar("site.title", "untitled"))
func GlobalVar(key string, def any) Func {
	return func(ctx Context) any {
		return ctx.Global.Lookup(key, def)
	}
}

// LocalVar returns a Func resolving a dot-path key against the local
// namespace at render time.
//
//	htmlkit.Span(htmlkit.LocalVar("text", ""))
func LocalVar(key string, def any) Func {
	return func(ctx Context) any {
		return ctx.Local.Lookup(key, def)
	}
}
