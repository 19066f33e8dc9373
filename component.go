package htmlkit

import "fmt"

// HTMLData is the result of compiling a component: the rendered markup plus
// the flat, possibly-duplicated requirement lists the component subtree
// declared. Deduplication happens later, only if the caller pours the lists
// into a PageResources.
type HTMLData struct {
	Code               string
	ScriptRequirements []*ScriptRequirement
	StyleRequirements  []*StyleRequirement
}

// Compiler is the component contract: produce an HTMLData bundle from the
// page-wide namespace. Concrete components are built from the three
// composition shapes below (or implement Compiler directly, as irregular
// components like trees with a single typed slot do).
type Compiler interface {
	Compile(global Vars) (HTMLData, error)
}

// Shared default templates for components that do not set their own.
var (
	defaultContainerTemplate = Div(LocalVar("children", nil))
	defaultWrapperTemplate   = Div(LocalVar("child", nil))
	defaultWidgetTemplate    = Span(LocalVar("text", nil))
)

// Widget is the zero-children composition shape: it renders its own
// template from the global namespace plus its own fixed fields, and
// returns its requirement lists unchanged.
//
// Concrete widgets embed Widget, declare Scripts/Styles/Template, and set
// Locals to fill the template's local namespace:
//
//	type Badge struct {
//	    htmlkit.Widget
//	    text string
//	}
//
//	func NewBadge(text string) *Badge {
//	    b := &Badge{text: text}
//	    b.Template = badgeTemplate
//	    b.Styles = []*htmlkit.StyleRequirement{badgeCSS}
//	    b.Locals = func(global htmlkit.Vars) htmlkit.Vars {
//	        return htmlkit.Vars{"text": b.text}
//	    }
//	    return b
//	}
type Widget struct {
	Template Node
	Scripts  []*ScriptRequirement
	Styles   []*StyleRequirement

	// Locals fills the local namespace for the template render. When nil,
	// the template renders with an empty local namespace.
	Locals func(global Vars) Vars
}

// Compile renders the widget's template and returns its own requirement
// lists.
func (w *Widget) Compile(global Vars) (HTMLData, error) {
	local := Vars{}
	if w.Locals != nil {
		local = w.Locals(global)
	}

	code, err := renderTemplate(w.Template, defaultWidgetTemplate, global, local)
	if err != nil {
		return HTMLData{}, err
	}

	return HTMLData{
		Code:               code,
		ScriptRequirements: w.Scripts,
		StyleRequirements:  w.Styles,
	}, nil
}

// Wrapper is the single-child composition shape: the child compiles first,
// its rendered string is spliced into the wrapper's template through the
// local namespace, and the requirement lists union own-first.
type Wrapper struct {
	Template Node
	Scripts  []*ScriptRequirement
	Styles   []*StyleRequirement
	Child    Compiler

	// Locals fills the local namespace given the child's rendered string.
	// When nil the child lands under the "child" key.
	Locals func(global Vars, child string) Vars
}

// Compile compiles the child, renders the wrapper template around it, and
// returns own-first concatenated requirement lists.
func (w *Wrapper) Compile(global Vars) (HTMLData, error) {
	if w.Child == nil {
		return HTMLData{}, fmt.Errorf("%w: wrapper has no child", ErrContract)
	}

	compiled, err := w.Child.Compile(global)
	if err != nil {
		return HTMLData{}, err
	}

	local := Vars{"child": compiled.Code}
	if w.Locals != nil {
		local = w.Locals(global, compiled.Code)
	}

	code, err := renderTemplate(w.Template, defaultWrapperTemplate, global, local)
	if err != nil {
		return HTMLData{}, err
	}

	return HTMLData{
		Code:               code,
		ScriptRequirements: concatScripts(w.Scripts, compiled.ScriptRequirements),
		StyleRequirements:  concatStyles(w.Styles, compiled.StyleRequirements),
	}, nil
}

// Container is the many-children composition shape: children compile in
// order, their rendered strings are spliced into the template as an ordered
// sequence, and the requirement lists union own-first then child-order.
type Container struct {
	Template Node
	Scripts  []*ScriptRequirement
	Styles   []*StyleRequirement
	Children []Compiler

	// Locals fills the local namespace given the children's rendered
	// strings. When nil the strings land under the "children" key.
	Locals func(global Vars, children []string) Vars
}

// Compile compiles every child in order, renders the container template
// around the collected strings, and returns the concatenated requirement
// lists: the container's own first, then each child's in child order.
func (c *Container) Compile(global Vars) (HTMLData, error) {
	compiledStrings := make([]string, 0, len(c.Children))
	scripts := concatScripts(c.Scripts)
	styles := concatStyles(c.Styles)

	for i, child := range c.Children {
		if child == nil {
			return HTMLData{}, fmt.Errorf("%w: container child %d is nil", ErrContract, i)
		}

		compiled, err := child.Compile(global)
		if err != nil {
			return HTMLData{}, err
		}

		compiledStrings = append(compiledStrings, compiled.Code)
		scripts = append(scripts, compiled.ScriptRequirements...)
		styles = append(styles, compiled.StyleRequirements...)
	}

	local := Vars{"children": compiledStrings}
	if c.Locals != nil {
		local = c.Locals(global, compiledStrings)
	}

	code, err := renderTemplate(c.Template, defaultContainerTemplate, global, local)
	if err != nil {
		return HTMLData{}, err
	}

	return HTMLData{
		Code:               code,
		ScriptRequirements: scripts,
		StyleRequirements:  styles,
	}, nil
}

func renderTemplate(template, fallback Node, global, local Vars) (string, error) {
	if template == nil {
		template = fallback
	}
	return template.Render(Context{Global: global, Local: local})
}

// concatScripts copies the given lists into a fresh slice so compiling
// never aliases a component's own declaration slice.
func concatScripts(lists ...[]*ScriptRequirement) []*ScriptRequirement {
	out := []*ScriptRequirement{}
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

func concatStyles(lists ...[]*StyleRequirement) []*StyleRequirement {
	out := []*StyleRequirement{}
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}
