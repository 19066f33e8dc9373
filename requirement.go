package htmlkit

import "fmt"

// ResourceType classifies what a preloaded resource is fetched as,
// mirroring the allowed values of the link rel=preload "as" attribute.
type ResourceType string

const (
	ResourceFetch  ResourceType = "fetch"
	ResourceFont   ResourceType = "font"
	ResourceImage  ResourceType = "image"
	ResourceScript ResourceType = "script"
	ResourceStyle  ResourceType = "style"
	ResourceTrack  ResourceType = "track"
)

func (t ResourceType) valid() bool {
	switch t {
	case ResourceFetch, ResourceFont, ResourceImage, ResourceScript, ResourceStyle, ResourceTrack:
		return true
	}
	return false
}

// Resource is an asset that should be preloaded alongside a script or style
// requirement (a font, an image sprite, a data file). It renders as a
// <link rel="preload"> tag.
//
// Identity is the path alone: two resources with the same path refer to the
// same asset regardless of their other fields.
type Resource struct {
	Path     string
	Type     ResourceType
	MIMEType string
}

// NewResource creates a preloadable resource reference. mimeType may be
// empty, in which case the type attribute is omitted from the emitted tag.
// An unknown resource type is ErrContract.
func NewResource(path string, typ ResourceType, mimeType string) (*Resource, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: resource path must not be empty", ErrContract)
	}
	if !typ.valid() {
		return nil, fmt.Errorf("%w: invalid resource type %q", ErrContract, typ)
	}
	return &Resource{Path: path, Type: typ, MIMEType: mimeType}, nil
}

// Tag renders the preload link markup for the resource.
//
// crossorigin is always set to anonymous: preloads fetched with a different
// credentials mode than the eventual consumer are re-downloaded by
// browsers, and anonymous matches how fonts and CORS-enabled assets load.
func (r *Resource) Tag() (string, error) {
	link := Link().WithAttrs(Attrs{
		{Key: "rel", Value: "preload"},
		{Key: "href", Value: r.Path},
		{Key: "as", Value: string(r.Type)},
		// An empty value drops the attribute entirely.
		{Key: "type", Value: r.MIMEType},
		{Key: "crossorigin", Value: "anonymous"},
	})
	return link.Render(Context{})
}

// ScriptLoading is a bit set of script loading techniques.
//
// LoadingDefer and LoadingAsync combine (LoadingAsyncDefer); the other
// values are standalone. The technique decides where the assembler places
// the script tag and which of the defer/async attributes it carries - see
// HeadTags and BodyCloseTags for the placement contract.
type ScriptLoading uint8

const (
	// LoadingNormal is a plain head script tag.
	LoadingNormal ScriptLoading = 1 << iota
	// LoadingDefer adds the defer attribute.
	LoadingDefer
	// LoadingAsync adds the async attribute.
	LoadingAsync
	// LoadingPreload emits a preload link in the head and the actual script
	// tag at the end of the document.
	LoadingPreload

	// LoadingAsyncDefer requests both behaviors and lets the browser pick
	// the strongest supported one.
	LoadingAsyncDefer = LoadingDefer | LoadingAsync
)

// Has reports whether the set contains the given technique bits.
func (l ScriptLoading) Has(flag ScriptLoading) bool {
	return l&flag == flag
}

func (l ScriptLoading) String() string {
	switch l {
	case LoadingNormal:
		return "normal"
	case LoadingDefer:
		return "defer"
	case LoadingAsync:
		return "async"
	case LoadingAsyncDefer:
		return "async_defer"
	case LoadingPreload:
		return "preload"
	}
	return fmt.Sprintf("ScriptLoading(%d)", uint8(l))
}

// ScriptRequirement declares a dependency on a script asset.
//
// Name is descriptive only; identity is the Path. Priority breaks ties when
// independent components declare the same path: the strictly higher
// priority wins during aggregation (see PageResources).
type ScriptRequirement struct {
	Name             string
	Path             string
	Priority         int
	Loading          ScriptLoading
	PreloadResources []*Resource
}

// NewScript creates a script requirement with priority 50 and async+defer
// loading. Adjust with the fluent setters:
//
//	htmlkit.NewScript("tree-widget", "/static/tree.js").
//	    WithPriority(70).
//	    WithLoading(htmlkit.LoadingPreload).
//	    WithPreload(spriteRes)
func NewScript(name, path string) *ScriptRequirement {
	return &ScriptRequirement{
		Name:     name,
		Path:     path,
		Priority: 50,
		Loading:  LoadingAsyncDefer,
	}
}

// WithPriority sets the priority and returns the requirement.
func (s *ScriptRequirement) WithPriority(priority int) *ScriptRequirement {
	s.Priority = priority
	return s
}

// WithLoading sets the loading technique and returns the requirement.
func (s *ScriptRequirement) WithLoading(loading ScriptLoading) *ScriptRequirement {
	s.Loading = loading
	return s
}

// WithPreload appends preload resources and returns the requirement.
func (s *ScriptRequirement) WithPreload(resources ...*Resource) *ScriptRequirement {
	s.PreloadResources = append(s.PreloadResources, resources...)
	return s
}

// Tag renders the script tag for the requirement, carrying defer/async
// attributes per the loading technique.
func (s *ScriptRequirement) Tag() (string, error) {
	script := Script().WithAttrs(Attrs{
		{Key: "src", Value: s.Path},
		{Key: "defer", Value: s.Loading.Has(LoadingDefer)},
		{Key: "async", Value: s.Loading.Has(LoadingAsync)},
	})
	return script.Render(Context{})
}

// PreloadLinkTag renders the head-side <link rel="preload" as="script"> tag
// used for requirements with the LoadingPreload technique.
func (s *ScriptRequirement) PreloadLinkTag() (string, error) {
	link := Link().WithAttrs(Attrs{
		{Key: "rel", Value: "preload"},
		{Key: "href", Value: s.Path},
		{Key: "as", Value: "script"},
		{Key: "crossorigin", Value: "anonymous"},
	})
	return link.Render(Context{})
}

// ResourceTags renders the preload link tags of the requirement's
// resources, in declaration order.
func (s *ScriptRequirement) ResourceTags() ([]string, error) {
	return resourceTags(s.PreloadResources)
}

func (s *ScriptRequirement) String() string {
	return fmt.Sprintf("ScriptRequirement(name=%q, path=%q, priority=%d, loading=%s, preload=%d)",
		s.Name, s.Path, s.Priority, s.Loading, len(s.PreloadResources))
}

// StyleRequirement declares a dependency on a stylesheet asset. Like
// scripts, identity is the Path and priority breaks duplicate-declaration
// ties; stylesheets have no loading technique.
type StyleRequirement struct {
	Name             string
	Path             string
	Priority         int
	PreloadResources []*Resource
}

// NewStyle creates a style requirement with priority 50.
func NewStyle(name, path string) *StyleRequirement {
	return &StyleRequirement{Name: name, Path: path, Priority: 50}
}

// WithPriority sets the priority and returns the requirement.
func (s *StyleRequirement) WithPriority(priority int) *StyleRequirement {
	s.Priority = priority
	return s
}

// WithPreload appends preload resources and returns the requirement.
func (s *StyleRequirement) WithPreload(resources ...*Resource) *StyleRequirement {
	s.PreloadResources = append(s.PreloadResources, resources...)
	return s
}

// Tag renders the stylesheet link markup for the requirement.
func (s *StyleRequirement) Tag() (string, error) {
	link := Link().WithAttrs(Attrs{
		{Key: "rel", Value: "stylesheet"},
		{Key: "href", Value: s.Path},
	})
	return link.Render(Context{})
}

// ResourceTags renders the preload link tags of the requirement's
// resources, in declaration order.
func (s *StyleRequirement) ResourceTags() ([]string, error) {
	return resourceTags(s.PreloadResources)
}

func (s *StyleRequirement) String() string {
	return fmt.Sprintf("StyleRequirement(name=%q, path=%q, priority=%d, preload=%d)",
		s.Name, s.Path, s.Priority, len(s.PreloadResources))
}

func resourceTags(resources []*Resource) ([]string, error) {
	tags := make([]string, 0, len(resources))
	for _, resource := range resources {
		tag, err := resource.Tag()
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// MustResource is NewResource panicking on error, for package-level
// requirement tables where a bad declaration is a programming error.
func MustResource(path string, typ ResourceType, mimeType string) *Resource {
	res, err := NewResource(path, typ, mimeType)
	if err != nil {
		panic(err)
	}
	return res
}
