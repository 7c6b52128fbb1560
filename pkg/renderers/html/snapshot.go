package html

import (
	"fmt"

	"github.com/goliatone/go-modelview/pkg/model"
	"github.com/goliatone/go-modelview/pkg/uischema"
	"github.com/goliatone/go-modelview/pkg/view"
	"github.com/goliatone/go-modelview/pkg/widgets"
)

// FormData is the template context built from a widget tree. Nested forms
// appear as group entries followed by their fields, so templates iterate a
// flat list and indent by level.
type FormData struct {
	Title   string
	CSSVars string
	Fields  []FieldData
}

// FieldData describes one widget occurrence.
type FieldData struct {
	Name        string
	Path        string
	Kind        string
	Label       string
	Value       any
	Group       bool
	Level       int
	Disabled    bool
	Placeholder string
	Choices     []string
	HasBounds   bool
	Min         float64
	Max         float64
	Step        float64
}

func snapshot(form *view.Form, cssVars string) FormData {
	data := FormData{
		Title:   form.Description(),
		CSSVars: cssVars,
	}
	form.Walk(func(path []string, w widgets.Widget) error {
		data.Fields = append(data.Fields, fieldData(path, w))
		return nil
	})
	return data
}

func fieldData(path []string, w widgets.Widget) FieldData {
	name := path[len(path)-1]
	field := FieldData{
		Name:  name,
		Path:  uischema.PathKey(path),
		Kind:  w.Kind(),
		Label: model.DisplayName(name),
		Level: len(path) - 1,
	}

	if nested, ok := w.(*view.Form); ok {
		field.Group = true
		field.Label = nested.Description()
		return field
	}

	field.Value = w.Value()
	if described, ok := w.(widgets.Describable); ok {
		field.Label = described.Description()
	}
	if disabled, ok := w.(widgets.Disableable); ok {
		field.Disabled = disabled.Disabled()
	}
	if text, ok := w.(interface{ Placeholder() string }); ok {
		field.Placeholder = text.Placeholder()
	}
	if enum, ok := w.(interface{ Choices() []any }); ok {
		for _, choice := range enum.Choices() {
			field.Choices = append(field.Choices, fmt.Sprint(choice))
		}
	}
	if bounded, ok := w.(interface {
		Min() (float64, bool)
		Max() (float64, bool)
	}); ok {
		min, hasMin := bounded.Min()
		max, hasMax := bounded.Max()
		if hasMin && hasMax {
			field.HasBounds = true
			field.Min = min
			field.Max = max
			field.Step = 1
		}
	}
	if stepped, ok := w.(interface{ Step() float64 }); ok && stepped.Step() > 0 {
		field.Step = stepped.Step()
	}
	return field
}
