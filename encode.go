package htmlkit

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is a single attribute entry. Value may be a string, a bool (true
// emits the bare key, false emits nothing), nested Attrs, a []any list
// (flattened with the index as the path segment), a Func resolved at render
// time, or any other value (stringified).
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered attribute mapping.
//
// Order matters: attributes are emitted in declaration order, so Attrs is a
// slice of pairs rather than a Go map. Duplicate keys are not collapsed.
//
//	htmlkit.Attrs{{"class", "card"}, {"hidden", true}}
type Attrs []Attr

// Get returns the value stored under key and whether it is present.
// If key repeats, the first occurrence wins.
func (a Attrs) Get(key string) (any, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return nil, false
}

// merge returns a copy of a with the entries of other applied on top:
// matching keys are replaced in place, new keys are appended.
func (a Attrs) merge(other Attrs) Attrs {
	merged := a.clone()
	for _, attr := range other {
		replaced := false
		for i := range merged {
			if merged[i].Key == attr.Key {
				merged[i].Value = attr.Value
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, attr)
		}
	}
	return merged
}

func (a Attrs) clone() Attrs {
	if a == nil {
		return nil
	}
	cloned := make(Attrs, len(a))
	for i, attr := range a {
		cloned[i] = Attr{Key: attr.Key, Value: cloneItem(attr.Value)}
	}
	return cloned
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// EscapeText escapes text to be HTML-safe. The substituted characters are
// & < > " ' (the set browsers need to treat content as inert text).
func EscapeText(text string) string {
	return htmlEscaper.Replace(text)
}

// EncodeAttributeKey converts an attribute key to its HTML-compliant
// counterpart: a lowercase letter or digit immediately followed by an
// uppercase letter gets a hyphen inserted and the letter lowered, matching
// the data-* dataset naming convention.
//
//	EncodeAttributeKey("helloWorld") // "hello-world"
//
// A key already containing a hyphen is rejected with ErrAttributeEncoding,
// since hyphenation is introduced mechanically and a literal hyphen would
// be ambiguous when mapped back to a dataset property.
func EncodeAttributeKey(key string) (string, error) {
	if strings.Contains(key, "-") {
		return "", fmt.Errorf("%w: attribute key %q must not contain hyphens", ErrAttributeEncoding, key)
	}

	var b strings.Builder
	b.Grow(len(key))
	prevLowerOrDigit := false
	for _, r := range key {
		if prevLowerOrDigit && r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
		prevLowerOrDigit = (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
	}
	return b.String(), nil
}

// EncodeAttributes encodes an ordered attribute mapping into the string that
// goes inside a tag definition.
//
// Values flatten recursively: nested Attrs become dot-path keys
// (key.subkey=value, or a custom concatenator), lists use their index as the
// path segment, Funcs are invoked with ctx and their result resolved again,
// booleans follow the HTML boolean-attribute convention (true emits the bare
// key, false emits nothing), and anything else is stringified, HTML-escaped
// and emitted as key='value' - unless the string is empty, in which case the
// key is omitted entirely so browsers cannot misread it as a boolean flag.
//
// prefix, when non-empty, is prepended to every key with the concatenator;
// isData additionally prefixes every key with "data-". Output fragments are
// joined with single spaces in declaration order.
//
//	attrs := htmlkit.Attrs{
//	    {"a", "x"},
//	    {"b", true},
//	    {"c", htmlkit.Attrs{{"y", []any{1, 2}}}},
//	}
//	EncodeAttributes(attrs, "", ".", ctx, false)
//	// "a='x' b c.y.0='1' c.y.1='2'"
func EncodeAttributes(attrs Attrs, prefix, concatenator string, ctx Context, isData bool) (string, error) {
	if concatenator == "" {
		concatenator = "."
	}

	encoded := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		key, err := EncodeAttributeKey(attr.Key)
		if err != nil {
			return "", err
		}

		if prefix != "" {
			key = prefix + concatenator + key
		}
		if isData {
			key = "data-" + key
		}

		fragment, err := encodeAttributeValue(key, attr.Value, concatenator, ctx)
		if err != nil {
			return "", err
		}
		if fragment != "" {
			encoded = append(encoded, fragment)
		}
	}

	return strings.Join(encoded, " "), nil
}

// encodeAttributeValue flattens one value (and anything it resolves to) into
// a space-joined run of key='value' fragments. Empty results collapse to "".
func encodeAttributeValue(key string, value any, concatenator string, ctx Context) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil

	case Attrs:
		fragments := make([]string, 0, len(v))
		for _, attr := range v {
			fragment, err := encodeAttributeValue(key+concatenator+attr.Key, attr.Value, concatenator, ctx)
			if err != nil {
				return "", err
			}
			if fragment != "" {
				fragments = append(fragments, fragment)
			}
		}
		return strings.Join(fragments, " "), nil

	case []any:
		fragments := make([]string, 0, len(v))
		for index, item := range v {
			fragment, err := encodeAttributeValue(key+concatenator+strconv.Itoa(index), item, concatenator, ctx)
			if err != nil {
				return "", err
			}
			if fragment != "" {
				fragments = append(fragments, fragment)
			}
		}
		return strings.Join(fragments, " "), nil

	case Func:
		return encodeAttributeValue(key, v(ctx), concatenator, ctx)

	case bool:
		if v {
			return key, nil
		}
		return "", nil

	default:
		if f, ok := asFunc(value); ok {
			return encodeAttributeValue(key, f(ctx), concatenator, ctx)
		}

		s := strings.TrimSpace(fmt.Sprint(v))
		if s == "" {
			// An empty value must drop the key too, or browsers would
			// interpret the bare key as a boolean true.
			return "", nil
		}
		return key + "='" + EscapeText(s) + "'", nil
	}
}
