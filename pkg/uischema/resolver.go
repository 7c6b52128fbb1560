package uischema

import (
	"github.com/goliatone/go-modelview/pkg/model"
)

// Metadata is the fully merged configuration for one attribute occurrence in
// one view. It is computed fresh per construction pass and never written
// back to the descriptor.
type Metadata map[string]any

// Resolver merges the metadata sources for attribute occurrences. Precedence,
// highest first: caller overrides for the exact path, the external tree entry
// at that path, the descriptor's own tags, derived defaults. The merge is a
// shallow override per option key.
type Resolver struct {
	tree      *Tree
	overrides map[string]Metadata
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithTree supplies the external path-keyed metadata tree.
func WithTree(tree *Tree) ResolverOption {
	return func(r *Resolver) {
		r.tree = tree
	}
}

// WithOverrides supplies per-call option overrides keyed by dotted path.
func WithOverrides(overrides map[string]Metadata) ResolverOption {
	return func(r *Resolver) {
		if len(overrides) > 0 {
			r.overrides = overrides
		}
	}
}

// NewResolver constructs a resolver.
func NewResolver(options ...ResolverOption) *Resolver {
	r := &Resolver{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Resolve computes the effective metadata for the attribute occurrence at
// path. Description and placeholder values carrying markup are sanitized.
func (r *Resolver) Resolve(path []string, attr model.Attribute) Metadata {
	effective := Metadata{
		"description": model.DisplayName(attr.Name),
	}
	if attr.ReadOnly {
		effective["disabled"] = true
	}

	for key, value := range attr.Tags {
		effective[key] = value
	}
	if r != nil && r.tree != nil {
		if options, ok := r.tree.Lookup(path); ok {
			for key, value := range options {
				effective[key] = value
			}
		}
	}
	if r != nil && r.overrides != nil {
		if options, ok := r.overrides[PathKey(path)]; ok {
			for key, value := range options {
				effective[key] = value
			}
		}
	}

	for _, key := range []string{"description", "placeholder"} {
		if raw, ok := effective[key].(string); ok {
			effective[key] = sanitizeMarkup(raw)
		}
	}
	return effective
}
