package htmlkit

import "testing"

func TestEncodeAttributeKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"camelCase", "helloWorld", "hello-world"},
		{"multiple humps", "ariaLabelledBy", "aria-labelled-by"},
		{"already lowercase", "class", "class"},
		{"digit before upper", "col2Span", "col2-span"},
		{"consecutive uppers keep trailing case", "aBC", "a-bC"},
		{"leading upper untouched", "Xml", "Xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeAttributeKey(tt.key)
			if err != nil {
				t.Fatalf("EncodeAttributeKey(%q) error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("EncodeAttributeKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestEncodeAttributeKeyRejectsHyphens(t *testing.T) {
	_, err := EncodeAttributeKey("data-thing")
	if err == nil {
		t.Fatal("expected error for hyphenated key, got nil")
	}
	if !IsAttributeEncoding(err) {
		t.Errorf("expected ErrAttributeEncoding, got %v", err)
	}
}

func TestEncodeAttributes(t *testing.T) {
	ctx := Context{}

	tests := []struct {
		name  string
		attrs Attrs
		want  string
	}{
		{
			"flat string values",
			Attrs{{"id", "main"}, {"class", "card wide"}},
			"id='main' class='card wide'",
		},
		{
			"nested mapping and list",
			Attrs{
				{"a", "x"},
				{"b", true},
				{"c", Attrs{{"y", []any{1, 2}}}},
			},
			"a='x' b c.y.0='1' c.y.1='2'",
		},
		{
			"false boolean omitted",
			Attrs{{"id", "main"}, {"hidden", false}},
			"id='main'",
		},
		{
			"empty value drops the key",
			Attrs{{"id", ""}, {"class", "card"}},
			"class='card'",
		},
		{
			"whitespace-only value drops the key",
			Attrs{{"id", "   "}},
			"",
		},
		{
			"nil value omitted",
			Attrs{{"id", nil}, {"class", "card"}},
			"class='card'",
		},
		{
			"value escaping",
			Attrs{{"title", `it's <b>`}},
			"title='it&#x27;s &lt;b&gt;'",
		},
		{
			"numeric value stringified",
			Attrs{{"tabindex", 3}},
			"tabindex='3'",
		},
		{
			"camelCase key hyphenated",
			Attrs{{"dataTarget", "x"}},
			"data-target='x'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeAttributes(tt.attrs, "", ".", ctx, false)
			if err != nil {
				t.Fatalf("EncodeAttributes error: %v", err)
			}
			if got != tt.want {
				t.Errorf("EncodeAttributes = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeAttributesFunc(t *testing.T) {
	ctx := Context{Local: Vars{"id": "node-7"}}
	attrs := Attrs{{"id", LocalVar("id", "")}}

	got, err := EncodeAttributes(attrs, "", ".", ctx, false)
	if err != nil {
		t.Fatalf("EncodeAttributes error: %v", err)
	}
	if want := "id='node-7'"; got != want {
		t.Errorf("EncodeAttributes = %q, want %q", got, want)
	}
}

func TestEncodeAttributesDataPrefix(t *testing.T) {
	attrs := Attrs{
		{"nodeId", "7"},
		{"flags", Attrs{{"open", true}}},
	}

	got, err := EncodeAttributes(attrs, "", ".", Context{}, true)
	if err != nil {
		t.Fatalf("EncodeAttributes error: %v", err)
	}
	if want := "data-node-id='7' data-flags.open"; got != want {
		t.Errorf("EncodeAttributes = %q, want %q", got, want)
	}
}

func TestEncodeAttributesPrefixAndConcatenator(t *testing.T) {
	attrs := Attrs{{"x", Attrs{{"y", "1"}}}}

	got, err := EncodeAttributes(attrs, "cfg", "_", Context{}, false)
	if err != nil {
		t.Fatalf("EncodeAttributes error: %v", err)
	}
	if want := "cfg_x_y='1'"; got != want {
		t.Errorf("EncodeAttributes = %q, want %q", got, want)
	}
}

func TestEscapeText(t *testing.T) {
	got := EscapeText(`<a href="x">it's & that</a>`)
	want := "&lt;a href=&quot;x&quot;&gt;it&#x27;s &amp; that&lt;/a&gt;"
	if got != want {
		t.Errorf("EscapeText = %q, want %q", got, want)
	}
}

func TestAttrsMergeKeepsOrder(t *testing.T) {
	base := Attrs{{"class", "card"}, {"id", "a"}}
	merged := base.merge(Attrs{{"id", "b"}, {"role", "note"}})

	want := Attrs{{"class", "card"}, {"id", "b"}, {"role", "note"}}
	if len(merged) != len(want) {
		t.Fatalf("merged length = %d, want %d", len(merged), len(want))
	}
	for i := range want {
		if merged[i].Key != want[i].Key || merged[i].Value != want[i].Value {
			t.Errorf("merged[%d] = %v, want %v", i, merged[i], want[i])
		}
	}

	if v, _ := base.Get("id"); v != "a" {
		t.Errorf("merge mutated the receiver: id = %v, want a", v)
	}
}
