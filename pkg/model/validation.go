package model

import (
	"fmt"
	"reflect"
)

// ValidationError reports a rejected assignment. The attribute keeps its
// prior value whenever a Set returns one of these.
type ValidationError struct {
	Name   string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v for attribute %q: %s", e.Value, e.Name, e.Reason)
}

// UnknownAttributeError reports a Get/Set against a name the schema does not
// declare.
type UnknownAttributeError struct {
	Schema string
	Name   string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("schema %q does not declare attribute %q", e.Schema, e.Name)
}

// validateValue runs the built-in checks for the attribute kind and the
// optional custom validator, returning the normalized value to store.
func validateValue(attr Attribute, value any) (any, error) {
	normalized, err := coerce(attr, value)
	if err != nil {
		return nil, err
	}
	if attr.Validator != nil {
		if err := attr.Validator(normalized); err != nil {
			return nil, &ValidationError{Name: attr.Name, Value: value, Reason: err.Error()}
		}
	}
	return normalized, nil
}

func coerce(attr Attribute, value any) (any, error) {
	switch attr.Kind {
	case KindString:
		str, ok := value.(string)
		if !ok {
			return nil, &ValidationError{Name: attr.Name, Value: value, Reason: "expected a string"}
		}
		return str, nil

	case KindBool:
		flag, ok := value.(bool)
		if !ok {
			return nil, &ValidationError{Name: attr.Name, Value: value, Reason: "expected a boolean"}
		}
		return flag, nil

	case KindInt:
		number, ok := toInt(value)
		if !ok {
			return nil, &ValidationError{Name: attr.Name, Value: value, Reason: "expected an integer"}
		}
		if err := checkBounds(attr, float64(number)); err != nil {
			return nil, err
		}
		return number, nil

	case KindFloat:
		number, ok := toFloat(value)
		if !ok {
			return nil, &ValidationError{Name: attr.Name, Value: value, Reason: "expected a number"}
		}
		if err := checkBounds(attr, number); err != nil {
			return nil, err
		}
		return number, nil

	case KindEnum:
		for _, choice := range attr.Choices {
			if reflect.DeepEqual(choice, value) {
				return value, nil
			}
		}
		return nil, &ValidationError{Name: attr.Name, Value: value, Reason: fmt.Sprintf("not one of %v", attr.Choices)}

	case KindModel:
		if value == nil {
			return nil, nil
		}
		nested, ok := value.(Model)
		if !ok {
			return nil, &ValidationError{Name: attr.Name, Value: value, Reason: "expected a model instance"}
		}
		if nested.Schema() != attr.Schema {
			return nil, &ValidationError{Name: attr.Name, Value: value, Reason: fmt.Sprintf("expected a %q model", attr.Schema.Name())}
		}
		return nested, nil
	}
	return nil, &ValidationError{Name: attr.Name, Value: value, Reason: fmt.Sprintf("unknown kind %q", attr.Kind)}
}

func checkBounds(attr Attribute, number float64) error {
	if attr.Min != nil && number < *attr.Min {
		return &ValidationError{Name: attr.Name, Value: number, Reason: fmt.Sprintf("below minimum %v", *attr.Min)}
	}
	if attr.Max != nil && number > *attr.Max {
		return &ValidationError{Name: attr.Name, Value: number, Reason: fmt.Sprintf("above maximum %v", *attr.Max)}
	}
	return nil
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
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
