package view

import (
	"fmt"

	"github.com/goliatone/go-modelview/pkg/binding"
	"github.com/goliatone/go-modelview/pkg/model"
	"github.com/goliatone/go-modelview/pkg/uischema"
	"github.com/goliatone/go-modelview/pkg/widgets"
)

// WidgetForm is the kind reported by Form nodes.
const WidgetForm = "form"

// Child is one entry of a form: a leaf widget or a nested *Form, addressed
// by its attribute name and full path from the view root.
type Child struct {
	Name   string
	Path   []string
	Widget widgets.Widget
}

// Form is the composite node a view build returns: one child per surviving
// attribute, in declaration order. A form built from a schema is a template;
// SetModel attaches (or replaces) the model instance and rewires every
// binding. Form itself satisfies the widget contract with the model as its
// bindable value, which is what lets nested model attributes bind like any
// other leaf.
type Form struct {
	schema      *model.Schema
	description string
	children    []Child
	index       map[string]int

	model     model.Model
	links     []*binding.Link
	listeners []*formListener
	onReject  binding.RejectionHandler
}

type formListener struct {
	fn func(value any)
}

func newForm(schema *model.Schema, onReject binding.RejectionHandler) *Form {
	return &Form{
		schema:      schema,
		description: model.DisplayName(schema.Name()),
		index:       make(map[string]int),
		onReject:    onReject,
	}
}

func (f *Form) addChild(child Child) {
	f.index[child.Name] = len(f.children)
	f.children = append(f.children, child)
}

// Schema returns the schema the form was built from.
func (f *Form) Schema() *model.Schema { return f.schema }

// Model returns the currently attached model, nil for a detached template.
func (f *Form) Model() model.Model { return f.model }

// Children returns the child nodes in declaration order.
func (f *Form) Children() []Child {
	return append([]Child(nil), f.children...)
}

// Child returns the widget for the named top-level attribute.
func (f *Form) Child(name string) (widgets.Widget, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.children[i].Widget, true
}

// Walk visits every node depth-first in declaration order, nested forms
// before their children. Returning an error stops the walk.
func (f *Form) Walk(fn func(path []string, w widgets.Widget) error) error {
	for _, child := range f.children {
		if err := fn(child.Path, child.Widget); err != nil {
			return err
		}
		if nested, ok := child.Widget.(*Form); ok {
			if err := nested.Walk(fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Kind implements the widget contract.
func (f *Form) Kind() string { return WidgetForm }

// Value implements the widget contract; a form's bindable value is its
// model.
func (f *Form) Value() any {
	if f.model == nil {
		return nil
	}
	return f.model
}

// SetValue implements the widget contract by delegating to SetModel.
func (f *Form) SetValue(value any) error {
	if value == nil {
		return f.SetModel(nil)
	}
	m, ok := value.(model.Model)
	if !ok {
		return fmt.Errorf("view: form cannot hold %T", value)
	}
	return f.SetModel(m)
}

// OnChange implements the widget contract; listeners fire when the attached
// model is replaced.
func (f *Form) OnChange(fn func(value any)) (cancel func()) {
	entry := &formListener{fn: fn}
	f.listeners = append(f.listeners, entry)
	return func() {
		for i, candidate := range f.listeners {
			if candidate == entry {
				f.listeners = append(f.listeners[:i:i], f.listeners[i+1:]...)
				return
			}
		}
	}
}

// Description returns the form's heading text.
func (f *Form) Description() string { return f.description }

// SetDescription sets the form's heading text.
func (f *Form) SetDescription(description string) { f.description = description }

// SetModel attaches m and rewires every binding, tearing down links to any
// previously attached model first. Passing nil detaches the form, leaving
// widget values in place. Each (model, path) pair ends up with exactly one
// active link; on failure every link installed so far is removed and the
// form is left detached.
func (f *Form) SetModel(m model.Model) error {
	if m != nil && m.Schema() != f.schema {
		return fmt.Errorf("view: form built for schema %q cannot hold a %q model", f.schema.Name(), m.Schema().Name())
	}

	f.unlink()
	f.model = m
	if m == nil {
		f.notify()
		return nil
	}

	for _, child := range f.children {
		if nested, ok := child.Widget.(*Form); ok {
			// A nil nested value never reaches the link's initial sync, so
			// detach the subform explicitly; non-nil values attach through
			// the link below.
			if value, _ := m.Get(child.Name); value == nil {
				if err := nested.SetModel(nil); err != nil {
					f.abandonLinks()
					return err
				}
			}
		}
		link, err := binding.NewLink(m, child.Name, child.Widget,
			binding.WithPath(uischema.PathKey(child.Path)),
			binding.WithRejectionHandler(f.onReject),
		)
		if err != nil {
			f.abandonLinks()
			return fmt.Errorf("view: bind %s: %w", uischema.PathKey(child.Path), err)
		}
		f.links = append(f.links, link)
	}

	f.notify()
	return nil
}

func (f *Form) unlink() {
	for _, link := range f.links {
		link.Unlink()
	}
	f.links = nil
	for _, child := range f.children {
		if nested, ok := child.Widget.(*Form); ok {
			nested.unlink()
		}
	}
}

func (f *Form) abandonLinks() {
	f.unlink()
	f.model = nil
}

func (f *Form) notify() {
	value := f.Value()
	entries := append([]*formListener(nil), f.listeners...)
	for _, entry := range entries {
		entry.fn(value)
	}
}
