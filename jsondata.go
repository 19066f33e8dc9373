package htmlkit

import (
	"encoding/json"
	"fmt"
)

// JSONData is a JSON island: a <script type="application/json"> element
// whose only content is a validated JSON payload, the standard vehicle for
// handing structured data to client-side code.
//
// The payload may be a string (validated to parse as JSON), any value
// (validated to serialize as JSON), or a Func producing either - a Func is
// invoked at render time and its result validated then.
type JSONData struct {
	value any
	attrs Attrs
	data  Attrs
}

// NewJSONData creates a JSON island. A non-Func payload is validated
// immediately; an invalid one is ErrStructural.
func NewJSONData(value any) (*JSONData, error) {
	if _, ok := asFunc(value); !ok {
		if _, err := marshalPayload(value); err != nil {
			return nil, err
		}
	}
	return &JSONData{value: value}, nil
}

// With clones the island and replaces its payload, validating the new one
// the same way construction does.
func (j *JSONData) With(value any) (*JSONData, error) {
	if _, ok := asFunc(value); !ok {
		if _, err := marshalPayload(value); err != nil {
			return nil, err
		}
	}
	clone := j.clone()
	clone.value = value
	return clone, nil
}

// WithAttrs returns a copy with attrs merged over the current attributes.
// The type='application/json' attribute is fixed and cannot be removed.
func (j *JSONData) WithAttrs(attrs Attrs) *JSONData {
	clone := j.clone()
	clone.attrs = clone.attrs.merge(attrs)
	return clone
}

// WithData returns a copy with data merged over the current data-attributes.
func (j *JSONData) WithData(data Attrs) *JSONData {
	clone := j.clone()
	clone.data = clone.data.merge(data)
	return clone
}

func (j *JSONData) clone() *JSONData {
	return &JSONData{
		value: cloneItem(j.value),
		attrs: j.attrs.clone(),
		data:  j.data.clone(),
	}
}

// Render renders the island with no indentation.
func (j *JSONData) Render(ctx Context) (string, error) {
	return j.RenderIndent(ctx, 0, false)
}

// RenderIndent resolves a Func payload, validates the result, and renders
// the script element holding the JSON string.
func (j *JSONData) RenderIndent(ctx Context, indent int, whitespaceSensitive bool) (string, error) {
	value := j.value
	if f, ok := asFunc(value); ok {
		value = f(ctx)
	}

	payload, err := marshalPayload(value)
	if err != nil {
		return "", err
	}

	element := NewElement("script", payload)
	element.attrs = Attrs{{Key: "type", Value: "application/json"}}.merge(j.attrs)
	element.data = j.data.clone()

	return element.RenderIndent(ctx, indent, whitespaceSensitive)
}

// marshalPayload turns the payload into its JSON text. A string payload is
// required to already be valid JSON and passes through unaltered; anything
// else is serialized.
func marshalPayload(value any) (string, error) {
	if s, ok := value.(string); ok {
		if !json.Valid([]byte(s)) {
			return "", fmt.Errorf("%w: JSONData content is not a valid JSON string", ErrStructural)
		}
		return s, nil
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("%w: JSONData content is not JSON serializable: %v", ErrStructural, err)
	}
	return string(encoded), nil
}
