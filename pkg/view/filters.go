package view

import (
	"strings"

	"github.com/goliatone/go-modelview/pkg/model"
	"github.com/goliatone/go-modelview/pkg/uischema"
)

// Filter decides whether the attribute at path receives a widget. Excluded
// attributes get no widget, no binding, and no recursion.
type Filter func(path []string, attr model.Attribute) bool

// And combines two filters; both must accept.
func (f Filter) And(other Filter) Filter {
	return func(path []string, attr model.Attribute) bool {
		return f(path, attr) && other(path, attr)
	}
}

// Or combines two filters; either may accept.
func (f Filter) Or(other Filter) Filter {
	return func(path []string, attr model.Attribute) bool {
		return f(path, attr) || other(path, attr)
	}
}

// Not inverts the filter.
func (f Filter) Not() Filter {
	return func(path []string, attr model.Attribute) bool {
		return !f(path, attr)
	}
}

// Public accepts attributes whose name does not start with an underscore.
func Public() Filter {
	return func(path []string, attr model.Attribute) bool {
		return !strings.HasPrefix(path[len(path)-1], "_")
	}
}

// Allowlist accepts only the given dotted paths.
func Allowlist(paths ...string) Filter {
	allowed := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		allowed[p] = struct{}{}
	}
	return func(path []string, attr model.Attribute) bool {
		_, ok := allowed[uischema.PathKey(path)]
		return ok
	}
}

// Denylist rejects the given dotted paths.
func Denylist(paths ...string) Filter {
	return Allowlist(paths...).Not()
}
