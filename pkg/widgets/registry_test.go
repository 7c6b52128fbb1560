package widgets

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modelview/pkg/model"
)

func TestResolve_BuiltinDefaults(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		attr   model.Attribute
		expect string
	}{
		{
			name:   "plain string",
			attr:   model.Attribute{Name: "name", Kind: model.KindString},
			expect: WidgetText,
		},
		{
			name:   "read-only string",
			attr:   model.Attribute{Name: "id", Kind: model.KindString, ReadOnly: true},
			expect: WidgetLabel,
		},
		{
			name:   "secret string",
			attr:   model.Attribute{Name: "token", Kind: model.KindString, Tags: map[string]any{"secret": true}},
			expect: WidgetPassword,
		},
		{
			name:   "multiline string",
			attr:   model.Attribute{Name: "bio", Kind: model.KindString, Tags: map[string]any{"multiline": true}},
			expect: WidgetTextarea,
		},
		{
			name:   "boolean",
			attr:   model.Attribute{Name: "active", Kind: model.KindBool},
			expect: WidgetCheckbox,
		},
		{
			name:   "enum",
			attr:   model.Attribute{Name: "mood", Kind: model.KindEnum, Choices: []any{"a", "b"}},
			expect: WidgetDropdown,
		},
		{
			name:   "unbounded integer",
			attr:   model.Attribute{Name: "count", Kind: model.KindInt},
			expect: WidgetIntText,
		},
		{
			name:   "bounded integer",
			attr:   model.Attribute{Name: "age", Kind: model.KindInt, Min: model.Bound(0), Max: model.Bound(10)},
			expect: WidgetIntSlider,
		},
		{
			name:   "unbounded number",
			attr:   model.Attribute{Name: "ratio", Kind: model.KindFloat},
			expect: WidgetFloatText,
		},
		{
			name:   "bounded number",
			attr:   model.Attribute{Name: "level", Kind: model.KindFloat, Min: model.Bound(0), Max: model.Bound(1)},
			expect: WidgetFloatSlider,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			variant, _, err := reg.Resolve(tc.attr, "")
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if variant.Name != tc.expect {
				t.Fatalf("resolved %q, want %q", variant.Name, tc.expect)
			}
		})
	}
}

func TestResolve_BaseOptionsCarryBoundsAndChoices(t *testing.T) {
	reg := NewRegistry()

	attr := model.Attribute{Name: "age", Kind: model.KindInt, Min: model.Bound(0), Max: model.Bound(10)}
	_, opts, err := reg.Resolve(attr, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if min, ok := opts.Float(OptionMin); !ok || min != 0 {
		t.Fatalf("min option = %v (ok=%v), want 0", min, ok)
	}
	if max, ok := opts.Float(OptionMax); !ok || max != 10 {
		t.Fatalf("max option = %v (ok=%v), want 10", max, ok)
	}

	enum := model.Attribute{Name: "mood", Kind: model.KindEnum, Choices: []any{"calm", "busy"}}
	_, opts, err = reg.Resolve(enum, "")
	if err != nil {
		t.Fatalf("resolve enum: %v", err)
	}
	if choices, ok := opts.Slice(OptionChoices); !ok || len(choices) != 2 {
		t.Fatalf("choices option = %v", opts[OptionChoices])
	}
}

func TestResolve_ExplicitRequest(t *testing.T) {
	reg := NewRegistry()
	attr := model.Attribute{Name: "active", Kind: model.KindBool}

	variant, _, err := reg.Resolve(attr, WidgetToggle)
	if err != nil {
		t.Fatalf("resolve toggle: %v", err)
	}
	if variant.Name != WidgetToggle {
		t.Fatalf("resolved %q, want toggle", variant.Name)
	}
}

func TestResolve_ExplicitRequestIncompatible(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name      string
		attr      model.Attribute
		requested string
	}{
		{
			name:      "category mismatch",
			attr:      model.Attribute{Name: "active", Kind: model.KindBool},
			requested: WidgetIntSlider,
		},
		{
			name:      "unknown variant",
			attr:      model.Attribute{Name: "name", Kind: model.KindString},
			requested: "hologram",
		},
		{
			name:      "slider without bounds",
			attr:      model.Attribute{Name: "count", Kind: model.KindInt},
			requested: WidgetIntSlider,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := reg.Resolve(tc.attr, tc.requested)
			var incompatible *VariantIncompatibleError
			if !errors.As(err, &incompatible) {
				t.Fatalf("expected VariantIncompatibleError, got %v", err)
			}
		})
	}
}

func TestResolve_LaterRegistrationWins(t *testing.T) {
	reg := NewRegistry()

	reg.Register(model.KindBool, Variant{
		Name:      "fancy-switch",
		ValueKind: model.KindBool,
		Keys:      plainKeys,
		New:       NewToggle,
	})

	variant, _, err := reg.Resolve(model.Attribute{Name: "active", Kind: model.KindBool}, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if variant.Name != "fancy-switch" {
		t.Fatalf("resolved %q, want the newly registered variant", variant.Name)
	}

	// Earlier entries survive and stay addressable by name.
	if _, ok := reg.Lookup(WidgetCheckbox); !ok {
		t.Fatal("earlier registration was erased")
	}
}

func TestRegister_EmptyKeysDefaultToCommonOptions(t *testing.T) {
	reg := NewRegistry()

	reg.Register(model.KindString, Variant{
		Name: "plain-entry",
		New:  NewText,
	})

	variant, _, err := reg.Resolve(model.Attribute{Name: "note", Kind: model.KindString}, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if variant.Name != "plain-entry" {
		t.Fatalf("resolved %q, want the keyless variant", variant.Name)
	}

	// Common presentation metadata survives the option filter.
	metadata := Options{
		OptionDescription: "Note",
		OptionDisabled:    true,
		OptionPlaceholder: "add a note",
		"custom":          "dropped",
	}
	filtered := metadata.Filter(variant.Keys...)
	want := Options{
		OptionDescription: "Note",
		OptionDisabled:    true,
		OptionPlaceholder: "add a note",
	}
	if diff := cmp.Diff(want, filtered); diff != "" {
		t.Fatalf("filtered options (-want +got):\n%s", diff)
	}
}

func TestResolve_FallbackChain(t *testing.T) {
	reg := NewEmptyRegistry()
	reg.Register(model.KindString, Variant{Name: WidgetText, Keys: textKeys, New: NewText})

	// An enum with no enum variant falls back to its string candidate.
	attr := model.Attribute{Name: "mood", Kind: model.KindEnum, Choices: []any{"a"}}
	variant, _, err := reg.Resolve(attr, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if variant.Name != WidgetText {
		t.Fatalf("resolved %q, want text fallback", variant.Name)
	}
}

func TestResolve_UnknownTypeWithoutFallback(t *testing.T) {
	reg := NewEmptyRegistry()

	_, _, err := reg.Resolve(model.Attribute{Name: "x", Kind: model.KindBool}, "")
	var unknown *UnknownTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
}
