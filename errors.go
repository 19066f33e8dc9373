package htmlkit

import "errors"

// Sentinel errors for construction, encoding and rendering failures.
// Errors returned by the package wrap one of these; match with errors.Is
// or the helpers below.
var (
	// ErrStructural reports an invalid tree shape: a self-closing element
	// given children, a Node embedded in Raw content, or an invalid JSON
	// payload for a JSON island.
	ErrStructural = errors.New("htmlkit: structural error")

	// ErrAttributeEncoding reports an attribute mapping that cannot be
	// encoded, such as a key containing a literal hyphen.
	ErrAttributeEncoding = errors.New("htmlkit: attribute encoding error")

	// ErrContextKey reports formatted Raw content referencing a key absent
	// from both the global and local namespaces.
	ErrContextKey = errors.New("htmlkit: context key not found")

	// ErrContract reports a misuse of the requirement or composition API,
	// such as a nil requirement passed to a resolver or a component
	// compiled without the pieces its shape demands.
	ErrContract = errors.New("htmlkit: contract violation")
)

// IsStructural checks if err is a tree-shape error.
func IsStructural(err error) bool {
	return errors.Is(err, ErrStructural)
}

// IsAttributeEncoding checks if err is an attribute encoding error.
func IsAttributeEncoding(err error) bool {
	return errors.Is(err, ErrAttributeEncoding)
}

// IsContextKey checks if err is a missing-context-key error.
func IsContextKey(err error) bool {
	return errors.Is(err, ErrContextKey)
}

// IsContract checks if err is an API contract violation.
func IsContract(err error) bool {
	return errors.Is(err, ErrContract)
}
