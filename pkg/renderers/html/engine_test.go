package html

import (
	"strings"
	"testing"
	"testing/fstest"
)

func greetFS() fstest.MapFS {
	return fstest.MapFS{
		"greet.html": {Data: []byte("hello {{ name }}")},
	}
}

func TestEngineRenderTemplateAppendsExtension(t *testing.T) {
	engine, err := NewEngine(
		WithFS(greetFS()),
		WithGlobalData(map[string]any{"name": "ada"}),
	)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	out, err := engine.RenderTemplate("greet", nil)
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "hello ada" {
		t.Errorf("output = %q", out)
	}

	// Same result with the extension spelled out; the parse is cached.
	again, err := engine.RenderTemplate("greet.html", map[string]any{"name": "grace"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if again != "hello grace" {
		t.Errorf("output = %q", again)
	}
}

func TestEngineRejectsNonMapData(t *testing.T) {
	engine, err := NewEngine(WithFS(greetFS()))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	_, err = engine.RenderTemplate("greet", 42)
	if err == nil || !strings.Contains(err.Error(), "must be a map") {
		t.Fatalf("err = %v, want map requirement", err)
	}
}

func TestEngineRequiresATemplateSource(t *testing.T) {
	if _, err := NewEngine(); err == nil {
		t.Fatal("expected error without a base dir or fs.FS")
	}
}
