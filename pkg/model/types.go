package model

import "fmt"

// Kind is the simplified enum of attribute value categories the view layer
// understands. Nested schemas use KindModel.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "integer"
	KindFloat  Kind = "number"
	KindBool   Kind = "boolean"
	KindEnum   Kind = "enum"
	KindModel  Kind = "model"
)

// Fallbacks returns the kinds a registry lookup may fall back to when no
// variant is registered for the kind itself, most specific first. Every chain
// ends at KindString because a text entry can host a stringified value of any
// category.
func (k Kind) Fallbacks() []Kind {
	switch k {
	case KindEnum:
		return []Kind{KindString}
	case KindInt:
		return []Kind{KindFloat, KindString}
	case KindFloat, KindBool:
		return []Kind{KindString}
	default:
		return nil
	}
}

// Valid reports whether the kind is one of the declared categories.
func (k Kind) Valid() bool {
	switch k {
	case KindString, KindInt, KindFloat, KindBool, KindEnum, KindModel:
		return true
	}
	return false
}

// Attribute describes one named, typed, validated slot on a model. Attributes
// are defined once per schema and shared read-only across every model
// instance and every generated view; the view layer never mutates them.
type Attribute struct {
	Name     string
	Kind     Kind
	Label    string
	Default  any
	ReadOnly bool

	// Min and Max bound numeric attributes. Nil means unbounded on that side.
	Min *float64
	Max *float64

	// Choices enumerates the admissible values of a KindEnum attribute in
	// declaration order.
	Choices []any

	// Tags carries schema-definition-time annotations (description, variant,
	// placeholder, ...) that the metadata resolver folds into widget options.
	Tags map[string]any

	// Schema declares the nested schema of a KindModel attribute.
	Schema *Schema

	// Validator, when set, runs after the built-in kind/bounds/choices checks
	// on every assignment.
	Validator func(value any) error
}

// Tag returns the tag value for key.
func (a Attribute) Tag(key string) (any, bool) {
	if a.Tags == nil {
		return nil, false
	}
	value, ok := a.Tags[key]
	return value, ok
}

// TagString returns the tag value for key when it is a non-empty string.
func (a Attribute) TagString(key string) (string, bool) {
	value, ok := a.Tag(key)
	if !ok {
		return "", false
	}
	str, ok := value.(string)
	return str, ok && str != ""
}

// Bounded reports whether both numeric bounds are declared.
func (a Attribute) Bounded() bool {
	return a.Min != nil && a.Max != nil
}

// Schema is an ordered collection of attribute descriptors. Iteration always
// follows declaration order so generated layouts never vary run to run.
type Schema struct {
	name  string
	attrs []Attribute
	index map[string]int
}

// NewSchema builds a schema from the supplied attributes, preserving their
// declaration order.
func NewSchema(name string, attrs ...Attribute) (*Schema, error) {
	schema := &Schema{
		name:  name,
		attrs: append([]Attribute(nil), attrs...),
		index: make(map[string]int, len(attrs)),
	}
	for i, attr := range schema.attrs {
		if attr.Name == "" {
			return nil, fmt.Errorf("model: schema %q declares an attribute without a name (position %d)", name, i)
		}
		if !attr.Kind.Valid() {
			return nil, fmt.Errorf("model: schema %q attribute %q has unknown kind %q", name, attr.Name, attr.Kind)
		}
		if attr.Kind == KindModel && attr.Schema == nil {
			return nil, fmt.Errorf("model: schema %q attribute %q is a model attribute without a nested schema", name, attr.Name)
		}
		if attr.Kind == KindEnum && len(attr.Choices) == 0 {
			return nil, fmt.Errorf("model: schema %q attribute %q is an enum without choices", name, attr.Name)
		}
		if _, exists := schema.index[attr.Name]; exists {
			return nil, fmt.Errorf("model: schema %q declares attribute %q twice", name, attr.Name)
		}
		schema.index[attr.Name] = i
	}
	return schema, nil
}

// MustNewSchema is NewSchema that panics on error. Intended for
// package-level schema declarations.
func MustNewSchema(name string, attrs ...Attribute) *Schema {
	schema, err := NewSchema(name, attrs...)
	if err != nil {
		panic(err)
	}
	return schema
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Len returns the number of declared attributes.
func (s *Schema) Len() int { return len(s.attrs) }

// Attributes returns the declared attributes in declaration order. The
// returned slice is a copy.
func (s *Schema) Attributes() []Attribute {
	return append([]Attribute(nil), s.attrs...)
}

// Attribute returns the descriptor declared under name.
func (s *Schema) Attribute(name string) (Attribute, bool) {
	if s == nil {
		return Attribute{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return Attribute{}, false
	}
	return s.attrs[i], true
}
