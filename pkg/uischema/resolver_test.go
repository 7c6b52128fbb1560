package uischema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goliatone/go-modelview/pkg/model"
)

func TestResolve_Defaults(t *testing.T) {
	r := NewResolver()

	got := r.Resolve([]string{"first_name"}, model.Attribute{Name: "first_name", Kind: model.KindString})
	want := Metadata{"description": "First Name"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_ReadOnlyMapsToDisabled(t *testing.T) {
	r := NewResolver()

	got := r.Resolve([]string{"id"}, model.Attribute{Name: "id", Kind: model.KindString, ReadOnly: true})
	if got["disabled"] != true {
		t.Fatalf("disabled = %v, want true", got["disabled"])
	}
}

func TestResolve_PrecedenceLaw(t *testing.T) {
	attr := model.Attribute{
		Name: "name",
		Kind: model.KindString,
		Tags: map[string]any{"description": "from tag", "placeholder": "tagged"},
	}
	tree := NewTree(map[string]*Node{
		"name": {Options: map[string]any{"description": "from tree"}},
	})

	// Tags beat defaults.
	got := NewResolver().Resolve([]string{"name"}, attr)
	if got["description"] != "from tag" {
		t.Fatalf("description = %v, want tag value", got["description"])
	}

	// Tree beats tags; untouched keys survive from lower layers.
	got = NewResolver(WithTree(tree)).Resolve([]string{"name"}, attr)
	if got["description"] != "from tree" {
		t.Fatalf("description = %v, want tree value", got["description"])
	}
	if got["placeholder"] != "tagged" {
		t.Fatalf("placeholder = %v, want tag value", got["placeholder"])
	}

	// Caller overrides beat everything.
	got = NewResolver(
		WithTree(tree),
		WithOverrides(map[string]Metadata{"name": {"description": "from override"}}),
	).Resolve([]string{"name"}, attr)
	if got["description"] != "from override" {
		t.Fatalf("description = %v, want override value", got["description"])
	}
}

func TestResolve_NestedPathLookup(t *testing.T) {
	tree := NewTree(map[string]*Node{
		"address": {
			Options: map[string]any{"description": "Address"},
			Children: map[string]*Node{
				"city": {Options: map[string]any{"placeholder": "City"}},
			},
		},
	})
	r := NewResolver(WithTree(tree))

	got := r.Resolve([]string{"address", "city"}, model.Attribute{Name: "city", Kind: model.KindString})
	if got["placeholder"] != "City" {
		t.Fatalf("placeholder = %v, want City", got["placeholder"])
	}
	// The parent node's options do not leak onto the child.
	if got["description"] != "City" {
		t.Fatalf("description = %v, want derived default", got["description"])
	}
}

func TestResolve_SanitizesMarkup(t *testing.T) {
	attr := model.Attribute{
		Name: "bio",
		Kind: model.KindString,
		Tags: map[string]any{"description": `click <script>alert(1)</script><b>here</b>`},
	}

	got := NewResolver().Resolve([]string{"bio"}, attr)
	if got["description"] != "click <b>here</b>" {
		t.Fatalf("description = %q, want sanitized markup", got["description"])
	}

	plain := NewResolver().Resolve([]string{"note"}, model.Attribute{
		Name: "note",
		Kind: model.KindString,
		Tags: map[string]any{"description": "a & b"},
	})
	if plain["description"] != "a & b" {
		t.Fatalf("plain description mangled: %q", plain["description"])
	}
}
