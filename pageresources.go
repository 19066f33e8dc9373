package htmlkit

import "fmt"

// PageResources aggregates the requirement declarations of every component
// on a page into a deduplicated, priority-resolved set, keyed by asset
// path. One is created empty per page render, fed with the requirement
// lists the compile pass produced, read once to emit tags, and discarded.
//
// Multiple independent components may declare the same shared script or
// stylesheet with different priorities or redundant preload hints; the page
// must ship exactly one tag per unique path while honoring whichever
// declaration asked for the strongest loading behavior. The merge rules:
//
//   - First declaration of a path is stored as-is and its preload resources
//     pulled in.
//   - A duplicate declaration with strictly higher priority replaces the
//     stored one entirely (loading technique included), keeping the
//     original emission slot. Ties and losses keep the stored declaration.
//   - The incoming declaration's preload resources are merged either way;
//     preloads are never dropped just because their requirement lost the
//     tag. When the incoming declaration wins, its resources also overwrite
//     colliding resource paths, so the winner's hints take precedence.
//
// PageResources is request-scoped and not safe for concurrent use; a page
// is assembled by one goroutine.
type PageResources struct {
	resources     map[string]*Resource
	resourceOrder []string

	styles     map[string]*StyleRequirement
	styleOrder []string

	scripts     map[string]*ScriptRequirement
	scriptOrder []string
}

// NewPageResources creates an empty aggregator.
func NewPageResources() *PageResources {
	return &PageResources{
		resources: make(map[string]*Resource),
		styles:    make(map[string]*StyleRequirement),
		scripts:   make(map[string]*ScriptRequirement),
	}
}

// AddScript upserts one script requirement. A nil requirement is
// ErrContract.
func (p *PageResources) AddScript(req *ScriptRequirement) error {
	if req == nil {
		return fmt.Errorf("%w: nil script requirement", ErrContract)
	}

	current, exists := p.scripts[req.Path]
	if !exists {
		p.scripts[req.Path] = req
		p.scriptOrder = append(p.scriptOrder, req.Path)
		return p.AddResourceList(req.PreloadResources, false)
	}

	if req.Priority > current.Priority {
		p.scripts[req.Path] = req
		return p.AddResourceList(req.PreloadResources, true)
	}
	return p.AddResourceList(req.PreloadResources, false)
}

// AddScriptList upserts script requirements in order.
func (p *PageResources) AddScriptList(reqs []*ScriptRequirement) error {
	for _, req := range reqs {
		if err := p.AddScript(req); err != nil {
			return err
		}
	}
	return nil
}

// AddStyle upserts one style requirement. A nil requirement is ErrContract.
func (p *PageResources) AddStyle(req *StyleRequirement) error {
	if req == nil {
		return fmt.Errorf("%w: nil style requirement", ErrContract)
	}

	current, exists := p.styles[req.Path]
	if !exists {
		p.styles[req.Path] = req
		p.styleOrder = append(p.styleOrder, req.Path)
		return p.AddResourceList(req.PreloadResources, false)
	}

	if req.Priority > current.Priority {
		p.styles[req.Path] = req
		return p.AddResourceList(req.PreloadResources, true)
	}
	return p.AddResourceList(req.PreloadResources, false)
}

// AddStyleList upserts style requirements in order.
func (p *PageResources) AddStyleList(reqs []*StyleRequirement) error {
	for _, req := range reqs {
		if err := p.AddStyle(req); err != nil {
			return err
		}
	}
	return nil
}

// AddResource records a preloadable resource. On a path collision the
// stored resource is kept unless overwrite is set, in which case the
// incoming one replaces it (keeping the original emission slot).
func (p *PageResources) AddResource(res *Resource, overwrite bool) error {
	if res == nil {
		return fmt.Errorf("%w: nil resource", ErrContract)
	}

	if _, exists := p.resources[res.Path]; exists {
		if overwrite {
			p.resources[res.Path] = res
		}
		return nil
	}

	p.resources[res.Path] = res
	p.resourceOrder = append(p.resourceOrder, res.Path)
	return nil
}

// AddResourceList records resources in order with a shared overwrite
// policy.
func (p *PageResources) AddResourceList(resources []*Resource, overwrite bool) error {
	for _, res := range resources {
		if err := p.AddResource(res, overwrite); err != nil {
			return err
		}
	}
	return nil
}

// Scripts returns the resolved script requirements in first-insertion
// order.
func (p *PageResources) Scripts() []*ScriptRequirement {
	out := make([]*ScriptRequirement, len(p.scriptOrder))
	for i, path := range p.scriptOrder {
		out[i] = p.scripts[path]
	}
	return out
}

// Styles returns the resolved style requirements in first-insertion order.
func (p *PageResources) Styles() []*StyleRequirement {
	out := make([]*StyleRequirement, len(p.styleOrder))
	for i, path := range p.styleOrder {
		out[i] = p.styles[path]
	}
	return out
}

// Resources returns the resolved preload resources in first-insertion
// order.
func (p *PageResources) Resources() []*Resource {
	out := make([]*Resource, len(p.resourceOrder))
	for i, path := range p.resourceOrder {
		out[i] = p.resources[path]
	}
	return out
}
