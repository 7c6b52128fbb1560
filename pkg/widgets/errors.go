package widgets

import (
	"fmt"

	"github.com/goliatone/go-modelview/pkg/model"
)

// VariantIncompatibleError reports an explicit variant request that the
// attribute cannot be represented by. Resolution fails fast instead of
// silently falling back to another candidate.
type VariantIncompatibleError struct {
	Requested string
	Kind      model.Kind
	Reason    string
}

func (e *VariantIncompatibleError) Error() string {
	return fmt.Sprintf("widgets: variant %q is incompatible with kind %q: %s", e.Requested, e.Kind, e.Reason)
}

// UnknownTypeError reports that no candidate and no universal fallback exist
// for an attribute kind. Unreachable on a registry built by NewRegistry; it
// indicates a misconfigured custom registry.
type UnknownTypeError struct {
	Kind model.Kind
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("widgets: no variant registered for kind %q and no fallback installed", e.Kind)
}
