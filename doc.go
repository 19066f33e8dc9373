// Package htmlkit is a server-side HTML document composition engine: typed,
// cloneable element trees rendered to text with controlled whitespace and
// escaping, plus a requirement resolver that turns every component's
// script/style declarations into one deduplicated, priority-ordered,
// loading-aware set of head and body tags.
//
// # Element trees
//
// Elements are built with per-tag constructors and rendered against a
// Context of global (page-wide) and local (node-specific) namespaces:
//
//	tpl := htmlkit.Div(
//	    htmlkit.H1(htmlkit.LocalVar("title", "")),
//	    htmlkit.P(htmlkit.LocalVar("body", "")),
//	).WithAttrs(htmlkit.Attrs{{"class", "card"}})
//
//	out, err := tpl.Render(htmlkit.Context{
//	    Local: htmlkit.Vars{"title": "Hello", "body": "First post."},
//	})
//
// Templates declared as package-level data are immutable: every builder
// method and the clone operation With return modified deep copies, so the
// same template serves many concurrent requests without locking. Children
// may be nodes, strings, slices, render-time Funcs, templ components or
// gomponents nodes.
//
// # Components
//
// Higher-level components compose through three shapes - Widget (no
// children), Wrapper (one child), Container (many) - each compiling to an
// HTMLData bundle of rendered markup plus the requirement lists the subtree
// declared:
//
//	data, err := page.Compile(htmlkit.Vars{"locale": "en"})
//
// # Requirements
//
// Components declare script and style requirements by asset path; a
// PageResources aggregator merges duplicates (highest priority wins,
// preload hints are never dropped) and HeadTags/BodyCloseTags emit the
// final markup in loading order:
//
//	pr := htmlkit.NewPageResources()
//	pr.AddScriptList(data.ScriptRequirements)
//	pr.AddStyleList(data.StyleRequirements)
//	head, _ := htmlkit.HeadTags(pr)
//	tail, _ := htmlkit.BodyCloseTags(pr)
//
// Rendering is pure data transformation: no I/O, no logging, no global
// state. Errors wrap the package sentinels (ErrStructural,
// ErrAttributeEncoding, ErrContextKey, ErrContract) and are matched with
// errors.Is.
package htmlkit
