package htmlkit

import "testing"

func TestTestCompile(t *testing.T) {
	card := &Wrapper{
		Scripts: []*ScriptRequirement{NewScript("card", "/card.js")},
		Styles:  []*StyleRequirement{NewStyle("card", "/card.css")},
		Child:   testWidget("card body", nil, nil),
	}

	result, err := TestCompile(card, Vars{})
	if err != nil {
		t.Fatalf("TestCompile error: %v", err)
	}

	if !result.HTMLContains("card body") {
		t.Errorf("HTML missing child content: %q", result.HTML)
	}
	if !result.HasScriptPath("/card.js") {
		t.Errorf("script path missing: %v", result.ScriptPaths())
	}
	if !result.HasStylePath("/card.css") {
		t.Errorf("style path missing: %v", result.StylePaths())
	}
	if result.HasScriptPath("/other.js") {
		t.Error("HasScriptPath matched an undeclared path")
	}

	if got := result.ScriptPaths(); len(got) != 1 || got[0] != "/card.js" {
		t.Errorf("ScriptPaths = %v, want [/card.js]", got)
	}
}

func TestTestCompilePropagatesErrors(t *testing.T) {
	if _, err := TestCompile(&Wrapper{}, Vars{}); !IsContract(err) {
		t.Errorf("expected ErrContract, got %v", err)
	}
}
