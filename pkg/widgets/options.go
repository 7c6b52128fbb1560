package widgets

// Recognised option keys. Variants declare which subset they accept; keys
// outside that subset are dropped before construction.
const (
	OptionDescription = "description"
	OptionDisabled    = "disabled"
	OptionPlaceholder = "placeholder"
	OptionChoices     = "choices"
	OptionMin         = "min"
	OptionMax         = "max"
	OptionStep        = "step"

	// OptionVariant requests a specific variant by name. Consumed during
	// resolution, never passed to a constructor.
	OptionVariant = "variant"
	// OptionFactory short-circuits variant resolution entirely. Consumed by
	// the view factory.
	OptionFactory = "factory"
)

// Options is the effective configuration handed to a widget constructor.
type Options map[string]any

// Merge returns a copy of o with overlay applied key by key. Overlay values
// fully replace existing ones; neither input is mutated.
func (o Options) Merge(overlay Options) Options {
	merged := make(Options, len(o)+len(overlay))
	for key, value := range o {
		merged[key] = value
	}
	for key, value := range overlay {
		merged[key] = value
	}
	return merged
}

// Filter returns the subset of o whose keys appear in keys.
func (o Options) Filter(keys ...string) Options {
	allowed := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		allowed[key] = struct{}{}
	}
	filtered := make(Options, len(o))
	for key, value := range o {
		if _, ok := allowed[key]; ok {
			filtered[key] = value
		}
	}
	return filtered
}

// String returns the value under key when it is a non-empty string.
func (o Options) String(key string) (string, bool) {
	value, ok := o[key]
	if !ok {
		return "", false
	}
	str, ok := value.(string)
	return str, ok && str != ""
}

// Bool returns the value under key when it is a boolean.
func (o Options) Bool(key string) (bool, bool) {
	value, ok := o[key]
	if !ok {
		return false, false
	}
	flag, ok := value.(bool)
	return flag, ok
}

// Float returns the value under key coerced to float64.
func (o Options) Float(key string) (float64, bool) {
	switch v := o[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Slice returns the value under key when it is a []any.
func (o Options) Slice(key string) ([]any, bool) {
	value, ok := o[key].([]any)
	return value, ok && len(value) > 0
}
