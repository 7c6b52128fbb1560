// Package modelview generates bound widget trees from model schemas. The
// root package re-exports the common entry points; the pkg tree carries the
// full surface.
package modelview

import (
	"github.com/goliatone/go-modelview/pkg/binding"
	"github.com/goliatone/go-modelview/pkg/model"
	"github.com/goliatone/go-modelview/pkg/view"
	"github.com/goliatone/go-modelview/pkg/widgets"
)

// Form is the composite node a view build returns.
type Form = view.Form

// Option configures a view build.
type Option = view.Option

// Build constructs a widget tree for the model and binds every leaf.
func Build(m model.Model, options ...Option) (*Form, error) {
	return view.Build(m, options...)
}

// BuildForSchema constructs a detached widget tree for the schema.
func BuildForSchema(schema *model.Schema, options ...Option) (*Form, error) {
	return view.BuildForSchema(schema, options...)
}

// Observe invokes fn with a full value snapshot whenever one of the named
// attributes changes. With no names, every attribute is observed.
func Observe(m model.Model, fn binding.ObserverFunc, names ...string) (*binding.Subscription, error) {
	return binding.Observe(m, fn, names...)
}

// RegisterVariant adds a widget variant to the process-wide registry used by
// default builds.
func RegisterVariant(kind model.Kind, variant widgets.Variant) {
	widgets.Register(kind, variant)
}
