package model

import (
	"fmt"
)

// Change describes one committed attribute mutation.
type Change struct {
	Name string
	Old  any
	New  any
}

// Observer receives committed changes. Delivery is synchronous and in
// subscription order, on whatever single-threaded context performed the Set.
type Observer func(Change)

// Model is the contract the view and binding layers consume. Implementations
// must validate on Set (rejecting with an error and keeping the prior value)
// and notify observers only after a value has been committed.
type Model interface {
	Schema() *Schema
	Get(name string) (any, bool)
	Set(name string, value any) error
	Observe(name string, fn Observer) (cancel func())
}

// Record is the reference Model implementation: a schema-backed value bag
// with per-attribute validation and synchronous change notification.
type Record struct {
	schema    *Schema
	values    map[string]any
	observers map[string][]*observerEntry
}

type observerEntry struct {
	fn Observer
}

// NewRecord builds a record seeded with each attribute's default (or the
// kind's zero value when no default is declared).
func NewRecord(schema *Schema) (*Record, error) {
	if schema == nil {
		return nil, fmt.Errorf("model: record requires a schema")
	}
	record := &Record{
		schema:    schema,
		values:    make(map[string]any, schema.Len()),
		observers: make(map[string][]*observerEntry),
	}
	for _, attr := range schema.attrs {
		value := attr.Default
		if value == nil {
			value = zeroValue(attr)
		}
		if value != nil {
			normalized, err := validateValue(attr, value)
			if err != nil {
				return nil, fmt.Errorf("model: default for %q: %w", attr.Name, err)
			}
			value = normalized
		}
		record.values[attr.Name] = value
	}
	return record, nil
}

// MustNewRecord is NewRecord that panics on error.
func MustNewRecord(schema *Schema) *Record {
	record, err := NewRecord(schema)
	if err != nil {
		panic(err)
	}
	return record
}

// Schema returns the schema the record was built from.
func (r *Record) Schema() *Schema { return r.schema }

// Get returns the current value of the named attribute.
func (r *Record) Get(name string) (any, bool) {
	if _, ok := r.schema.Attribute(name); !ok {
		return nil, false
	}
	return r.values[name], true
}

// Set validates and commits a new value for the named attribute, then
// notifies observers. On rejection the prior value is kept and a
// *ValidationError (wrapped) is returned.
func (r *Record) Set(name string, value any) error {
	attr, ok := r.schema.Attribute(name)
	if !ok {
		return fmt.Errorf("model: %w", &UnknownAttributeError{Schema: r.schema.Name(), Name: name})
	}
	if attr.ReadOnly {
		return fmt.Errorf("model: %w", &ValidationError{Name: name, Value: value, Reason: "attribute is read-only"})
	}
	normalized, err := validateValue(attr, value)
	if err != nil {
		return fmt.Errorf("model: %w", err)
	}
	old := r.values[name]
	r.values[name] = normalized
	r.notify(Change{Name: name, Old: old, New: normalized})
	return nil
}

// Observe registers fn for changes to the named attribute. The returned
// cancel function removes the registration; calling it more than once is
// harmless.
func (r *Record) Observe(name string, fn Observer) (cancel func()) {
	entry := &observerEntry{fn: fn}
	r.observers[name] = append(r.observers[name], entry)
	return func() {
		entries := r.observers[name]
		for i, candidate := range entries {
			if candidate == entry {
				r.observers[name] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// Values returns a snapshot of every attribute value keyed by name.
func (r *Record) Values() map[string]any {
	snapshot := make(map[string]any, len(r.values))
	for _, attr := range r.schema.attrs {
		snapshot[attr.Name] = r.values[attr.Name]
	}
	return snapshot
}

func (r *Record) notify(change Change) {
	// Copy so an observer cancelling itself mid-dispatch cannot skip peers.
	entries := append([]*observerEntry(nil), r.observers[change.Name]...)
	for _, entry := range entries {
		entry.fn(change)
	}
}

func zeroValue(attr Attribute) any {
	switch attr.Kind {
	case KindString:
		return ""
	case KindInt:
		return clampedZeroInt(attr)
	case KindFloat:
		return clampedZeroFloat(attr)
	case KindBool:
		return false
	case KindEnum:
		return attr.Choices[0]
	default:
		return nil
	}
}

func clampedZeroInt(attr Attribute) int {
	if attr.Min != nil && *attr.Min > 0 {
		return int(*attr.Min)
	}
	if attr.Max != nil && *attr.Max < 0 {
		return int(*attr.Max)
	}
	return 0
}

func clampedZeroFloat(attr Attribute) float64 {
	if attr.Min != nil && *attr.Min > 0 {
		return *attr.Min
	}
	if attr.Max != nil && *attr.Max < 0 {
		return *attr.Max
	}
	return 0
}
