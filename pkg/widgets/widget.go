package widgets

import "reflect"

// Widget is the capability contract the binding layer relies on: a bindable
// value with synchronous change notification. Anything satisfying it can be
// produced by a variant factory or returned from a transformer.
type Widget interface {
	// Kind identifies the widget type ("text", "int-slider", ...).
	Kind() string
	Value() any
	// SetValue updates the bindable value. Widgets reject only values they
	// cannot represent (wrong category, enum value outside the choices);
	// domain validation stays with the model.
	SetValue(value any) error
	// OnChange registers fn for committed value changes. The returned cancel
	// removes the registration.
	OnChange(fn func(value any)) (cancel func())
}

// Describable is the optional description capability. Metadata targeting a
// widget without it is dropped silently.
type Describable interface {
	Description() string
	SetDescription(description string)
}

// Disableable is the optional disabled capability.
type Disableable interface {
	Disabled() bool
	SetDisabled(disabled bool)
}

// core carries the state shared by every built-in widget. Widgets are
// single-threaded by contract, so no locking here.
type core struct {
	kind        string
	value       any
	description string
	disabled    bool
	listeners   []*listenerEntry
}

type listenerEntry struct {
	fn func(value any)
}

func (c *core) Kind() string { return c.kind }

func (c *core) Value() any { return c.value }

func (c *core) Description() string { return c.description }

func (c *core) SetDescription(description string) { c.description = description }

func (c *core) Disabled() bool { return c.disabled }

func (c *core) SetDisabled(disabled bool) { c.disabled = disabled }

func (c *core) OnChange(fn func(value any)) (cancel func()) {
	entry := &listenerEntry{fn: fn}
	c.listeners = append(c.listeners, entry)
	return func() {
		for i, candidate := range c.listeners {
			if candidate == entry {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// commit stores the value and notifies listeners when it actually changed.
func (c *core) commit(value any) {
	if reflect.DeepEqual(c.value, value) {
		return
	}
	c.value = value
	entries := append([]*listenerEntry(nil), c.listeners...)
	for _, entry := range entries {
		entry.fn(value)
	}
}

// applyCommonOptions populates the capabilities a widget exposes from the
// supplied options. Options a widget does not recognise are ignored.
func applyCommonOptions(w Widget, opts Options) {
	if description, ok := opts.String(OptionDescription); ok {
		if target, ok := w.(Describable); ok {
			target.SetDescription(description)
		}
	}
	if disabled, ok := opts.Bool(OptionDisabled); ok {
		if target, ok := w.(Disableable); ok {
			target.SetDisabled(disabled)
		}
	}
}
