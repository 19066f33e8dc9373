package htmlkit

import "strings"

// CompileResult holds a compiled component's output for test assertions.
type CompileResult struct {
	HTML    string
	Scripts []*ScriptRequirement
	Styles  []*StyleRequirement
}

// TestCompile compiles a component and returns testable output.
//
// Use it to assert on a component's markup and declared requirements
// without wiring up a page assembler:
//
//	result, err := htmlkit.TestCompile(card, htmlkit.Vars{"locale": "en"})
//	if !result.HTMLContains("card-title") {
//	    t.Fatal("missing title markup")
//	}
//	if !result.HasScriptPath("/static/card.js") {
//	    t.Fatal("card script not declared")
//	}
func TestCompile(c Compiler, global Vars) (*CompileResult, error) {
	data, err := c.Compile(global)
	if err != nil {
		return nil, err
	}
	return &CompileResult{
		HTML:    data.Code,
		Scripts: data.ScriptRequirements,
		Styles:  data.StyleRequirements,
	}, nil
}

// HTMLContains checks if the compiled markup contains the substring.
func (r *CompileResult) HTMLContains(s string) bool {
	return strings.Contains(r.HTML, s)
}

// ScriptPaths returns the declared script paths in declaration order,
// duplicates included.
func (r *CompileResult) ScriptPaths() []string {
	paths := make([]string, len(r.Scripts))
	for i, req := range r.Scripts {
		paths[i] = req.Path
	}
	return paths
}

// StylePaths returns the declared style paths in declaration order,
// duplicates included.
func (r *CompileResult) StylePaths() []string {
	paths := make([]string, len(r.Styles))
	for i, req := range r.Styles {
		paths[i] = req.Path
	}
	return paths
}

// HasScriptPath checks if any declared script requirement uses the path.
func (r *CompileResult) HasScriptPath(path string) bool {
	for _, req := range r.Scripts {
		if req.Path == path {
			return true
		}
	}
	return false
}

// HasStylePath checks if any declared style requirement uses the path.
func (r *CompileResult) HasStylePath(path string) bool {
	for _, req := range r.Styles {
		if req.Path == path {
			return true
		}
	}
	return false
}
