package widgets

import (
	"sync"

	"github.com/goliatone/go-modelview/pkg/model"
)

// Constructor builds a widget from its effective options.
type Constructor func(opts Options) (Widget, error)

// OptionFn derives a variant's base options from the attribute descriptor
// (bounds, choices). Effective metadata is merged on top of these.
type OptionFn func(attr model.Attribute) Options

// Variant is one registered candidate for representing an attribute kind.
type Variant struct {
	// Name is the identifier callers use to request this variant explicitly
	// via the "variant" metadata key.
	Name string
	// ValueKind is the value category of the widget's bindable value, used
	// for the compatibility check on explicit requests.
	ValueKind model.Kind
	// Keys lists the option keys the constructor accepts. Effective metadata
	// outside this set is dropped before construction. Leaving it empty
	// selects the common presentation keys (description, disabled,
	// placeholder).
	Keys []string
	// Match gates automatic selection during candidate scanning. Nil means
	// the variant always volunteers; explicit requests skip it entirely.
	Match func(attr model.Attribute) bool
	// Requires is the structural requirement checked on every resolution,
	// explicit requests included. A slider that needs both bounds declares
	// it here.
	Requires func(attr model.Attribute) bool
	// Defaults produces base options from the descriptor. May be nil.
	Defaults OptionFn
	// New constructs the widget.
	New Constructor
}

// Registry maps attribute kinds to ordered variant candidates. Registration
// appends: a later entry never erases an earlier one, and resolution scans
// the most recently registered candidate first, falling back through the
// kind's declared fallback chain and finally the universal text default.
//
// Registration is expected at process start, before views are built; the
// mutex only guards against registrations racing a concurrent lookup, not
// concurrent registration itself.
type Registry struct {
	mu       sync.RWMutex
	variants map[model.Kind][]Variant
	byName   map[string]Variant
	fallback *Variant
}

// NewRegistry constructs a registry pre-populated with the built-in variant
// set for every attribute kind.
func NewRegistry() *Registry {
	reg := NewEmptyRegistry()
	reg.registerBuiltins()
	return reg
}

// NewEmptyRegistry constructs a registry with no candidates and no universal
// fallback. Lookups on it fail with UnknownTypeError; intended for tests and
// fully custom toolkits.
func NewEmptyRegistry() *Registry {
	return &Registry{
		variants: make(map[model.Kind][]Variant),
		byName:   make(map[string]Variant),
	}
}

// Register appends a candidate variant for the given kind. Variants without
// a name or constructor are ignored. When several registrations share a
// name, the latest one answers explicit requests for it.
func (r *Registry) Register(kind model.Kind, variant Variant) {
	if r == nil || variant.Name == "" || variant.New == nil {
		return
	}
	if variant.ValueKind == "" {
		variant.ValueKind = kind
	}
	if len(variant.Keys) == 0 {
		variant.Keys = textKeys
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.variants[kind] = append(r.variants[kind], variant)
	r.byName[variant.Name] = variant
}

// SetFallback installs the universal default used when no candidate matches.
func (r *Registry) SetFallback(variant Variant) {
	if len(variant.Keys) == 0 {
		variant.Keys = textKeys
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = &variant
}

// Lookup returns the variant registered under name.
func (r *Registry) Lookup(name string) (Variant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	variant, ok := r.byName[name]
	return variant, ok
}

// Resolve selects the variant representing attr and returns it together with
// its base options. A non-empty requested name short-circuits candidate
// scanning: the named variant is used when it is structurally compatible with
// the attribute, and resolution fails with VariantIncompatibleError
// otherwise - never a silent fallback.
func (r *Registry) Resolve(attr model.Attribute, requested string) (Variant, Options, error) {
	if requested != "" {
		return r.resolveRequested(attr, requested)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := append([]model.Kind{attr.Kind}, attr.Kind.Fallbacks()...)
	for _, kind := range kinds {
		candidates := r.variants[kind]
		for i := len(candidates) - 1; i >= 0; i-- {
			candidate := candidates[i]
			if candidate.Match != nil && !candidate.Match(attr) {
				continue
			}
			if candidate.Requires != nil && !candidate.Requires(attr) {
				continue
			}
			return candidate, baseOptions(candidate, attr), nil
		}
	}

	if r.fallback != nil {
		return *r.fallback, baseOptions(*r.fallback, attr), nil
	}
	return Variant{}, nil, &UnknownTypeError{Kind: attr.Kind}
}

func (r *Registry) resolveRequested(attr model.Attribute, requested string) (Variant, Options, error) {
	variant, ok := r.Lookup(requested)
	if !ok {
		return Variant{}, nil, &VariantIncompatibleError{
			Requested: requested,
			Kind:      attr.Kind,
			Reason:    "no variant registered under that name",
		}
	}
	if !compatible(variant.ValueKind, attr.Kind) {
		return Variant{}, nil, &VariantIncompatibleError{
			Requested: requested,
			Kind:      attr.Kind,
			Reason:    "bindable value category " + string(variant.ValueKind) + " cannot hold " + string(attr.Kind),
		}
	}
	if variant.Requires != nil && !variant.Requires(attr) {
		return Variant{}, nil, &VariantIncompatibleError{
			Requested: requested,
			Kind:      attr.Kind,
			Reason:    "variant cannot represent this attribute",
		}
	}
	return variant, baseOptions(variant, attr), nil
}

func compatible(valueKind, attrKind model.Kind) bool {
	if valueKind == attrKind {
		return true
	}
	for _, kind := range attrKind.Fallbacks() {
		if valueKind == kind {
			return true
		}
	}
	return false
}

func baseOptions(variant Variant, attr model.Attribute) Options {
	if variant.Defaults == nil {
		return Options{}
	}
	opts := variant.Defaults(attr)
	if opts == nil {
		return Options{}
	}
	return opts
}

// Default is the process-wide registry the view factory consults unless a
// caller supplies its own.
var Default = NewRegistry()

// Register appends a candidate variant to the process-wide registry.
func Register(kind model.Kind, variant Variant) {
	Default.Register(kind, variant)
}

var textKeys = []string{OptionDescription, OptionDisabled, OptionPlaceholder}
var plainKeys = []string{OptionDescription, OptionDisabled}
var enumKeys = []string{OptionDescription, OptionDisabled, OptionChoices}
var rangeKeys = []string{OptionDescription, OptionDisabled, OptionMin, OptionMax, OptionStep}

// registerBuiltins installs the built-in candidates. Within one kind,
// registration runs from the generic candidate to the preferred one, since
// resolution scans most recent first. Variants meant only for explicit
// requests carry a Match that keeps them out of automatic scanning.
func (r *Registry) registerBuiltins() {
	boundedOnly := func(attr model.Attribute) bool { return attr.Bounded() }
	readOnly := func(attr model.Attribute) bool { return attr.ReadOnly }
	tagged := func(key string) func(model.Attribute) bool {
		return func(attr model.Attribute) bool {
			flag, ok := attr.Tag(key)
			enabled, isBool := flag.(bool)
			return ok && isBool && enabled
		}
	}
	bounds := func(attr model.Attribute) Options {
		opts := Options{}
		if attr.Min != nil {
			opts[OptionMin] = *attr.Min
		}
		if attr.Max != nil {
			opts[OptionMax] = *attr.Max
		}
		return opts
	}
	choices := func(attr model.Attribute) Options {
		return Options{OptionChoices: append([]any(nil), attr.Choices...)}
	}

	r.Register(model.KindString, Variant{Name: WidgetText, Keys: textKeys, New: NewText})
	r.Register(model.KindString, Variant{Name: WidgetTextarea, Keys: textKeys, Match: tagged("multiline"), New: NewTextarea})
	r.Register(model.KindString, Variant{Name: WidgetPassword, Keys: textKeys, Match: tagged("secret"), New: NewPassword})
	r.Register(model.KindString, Variant{Name: WidgetLabel, Keys: plainKeys, Match: readOnly, New: NewLabel})

	r.Register(model.KindBool, Variant{Name: WidgetToggle, Keys: plainKeys, Match: never, New: NewToggle})
	r.Register(model.KindBool, Variant{Name: WidgetCheckbox, Keys: plainKeys, New: NewCheckbox})

	r.Register(model.KindEnum, Variant{Name: WidgetSelectionSlider, Keys: enumKeys, Match: never, Defaults: choices, New: NewSelectionSlider})
	r.Register(model.KindEnum, Variant{Name: WidgetDropdown, Keys: enumKeys, Defaults: choices, New: NewDropdown})

	r.Register(model.KindInt, Variant{Name: WidgetIntText, Keys: textKeys, New: NewIntText})
	r.Register(model.KindInt, Variant{Name: WidgetBoundedIntText, Keys: rangeKeys, Match: never, Defaults: bounds, New: NewBoundedIntText})
	r.Register(model.KindInt, Variant{Name: WidgetIntSlider, Keys: rangeKeys, Requires: boundedOnly, Defaults: bounds, New: NewIntSlider})

	r.Register(model.KindFloat, Variant{Name: WidgetFloatText, Keys: textKeys, New: NewFloatText})
	r.Register(model.KindFloat, Variant{Name: WidgetBoundedFloatText, Keys: rangeKeys, Match: never, Defaults: bounds, New: NewBoundedFloatText})
	r.Register(model.KindFloat, Variant{Name: WidgetFloatSlider, Keys: rangeKeys, Requires: boundedOnly, Defaults: bounds, New: NewFloatSlider})

	r.fallback = &Variant{Name: WidgetText, ValueKind: model.KindString, Keys: textKeys, New: NewText}
}

func never(model.Attribute) bool { return false }
