package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-modelview/pkg/model"
)

const variantExtensionKey = "x-variant"

type config struct {
	resolveReferences bool
}

// Option configures an import.
type Option func(*config)

// WithExternalRefs allows the loader to follow references outside the
// document.
func WithExternalRefs() Option {
	return func(cfg *config) {
		cfg.resolveReferences = true
	}
}

// SchemaFromDocument loads an OpenAPI 3 document and converts the named
// component schema into a model schema. Object properties become nested
// model schemas; enums, numeric bounds, descriptions, defaults and the
// read-only flag carry over. Property names are emitted in sorted order
// since JSON object order is not significant.
func SchemaFromDocument(ctx context.Context, data []byte, component string, options ...Option) (*model.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.resolveReferences,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document declares no component schemas")
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok {
		return nil, fmt.Errorf("openapi: component schema %q not found", component)
	}

	conv := &converter{building: make(map[*openapi3.Schema]struct{})}
	schema, err := conv.object(component, ref)
	if err != nil {
		return nil, err
	}
	return schema, nil
}

type converter struct {
	// building guards against reference cycles; a schema reached again
	// while still being converted cannot be expressed as a nested model.
	building map[*openapi3.Schema]struct{}
}

func (c *converter) object(name string, ref *openapi3.SchemaRef) (*model.Schema, error) {
	src := deref(ref)
	if src == nil {
		return nil, fmt.Errorf("openapi: schema %q is an unresolved reference", name)
	}
	if !typeIs(src, openapi3.TypeObject) {
		return nil, fmt.Errorf("openapi: schema %q is %q, want object", name, firstType(src))
	}
	if _, seen := c.building[src]; seen {
		return nil, fmt.Errorf("openapi: schema %q references itself", name)
	}
	c.building[src] = struct{}{}
	defer delete(c.building, src)

	names := make([]string, 0, len(src.Properties))
	for property := range src.Properties {
		names = append(names, property)
	}
	sort.Strings(names)

	required := make(map[string]struct{}, len(src.Required))
	for _, property := range src.Required {
		required[property] = struct{}{}
	}

	attrs := make([]model.Attribute, 0, len(names))
	for _, property := range names {
		attr, err := c.attribute(name, property, src.Properties[property])
		if err != nil {
			return nil, err
		}
		if _, ok := required[property]; ok {
			if attr.Tags == nil {
				attr.Tags = map[string]any{}
			}
			attr.Tags["required"] = true
		}
		attrs = append(attrs, attr)
	}
	return model.NewSchema(name, attrs...)
}

func (c *converter) attribute(owner, property string, ref *openapi3.SchemaRef) (model.Attribute, error) {
	src := deref(ref)
	if src == nil {
		return model.Attribute{}, fmt.Errorf("openapi: property %s.%s is an unresolved reference", owner, property)
	}

	attr := model.Attribute{
		Name:     property,
		Default:  src.Default,
		ReadOnly: src.ReadOnly,
	}

	switch {
	case len(src.Enum) > 0:
		attr.Kind = model.KindEnum
		attr.Choices = append([]any(nil), src.Enum...)
	case typeIs(src, openapi3.TypeString):
		attr.Kind = model.KindString
	case typeIs(src, openapi3.TypeInteger):
		attr.Kind = model.KindInt
	case typeIs(src, openapi3.TypeNumber):
		attr.Kind = model.KindFloat
	case typeIs(src, openapi3.TypeBoolean):
		attr.Kind = model.KindBool
	case typeIs(src, openapi3.TypeObject):
		nested, err := c.object(owner+"."+property, ref)
		if err != nil {
			return model.Attribute{}, err
		}
		attr.Kind = model.KindModel
		attr.Schema = nested
	default:
		return model.Attribute{}, fmt.Errorf("openapi: property %s.%s has unsupported type %q", owner, property, firstType(src))
	}

	if src.Min != nil {
		value := *src.Min
		attr.Min = &value
	}
	if src.Max != nil {
		value := *src.Max
		attr.Max = &value
	}

	attr.Tags = propertyTags(src)
	return attr, nil
}

// propertyTags carries presentation hints over as attribute tags, where the
// metadata resolver picks them up.
func propertyTags(src *openapi3.Schema) map[string]any {
	tags := map[string]any{}
	if src.Description != "" {
		tags["description"] = src.Description
	}
	if src.Format == "password" {
		tags["secret"] = true
	}
	if variant, ok := src.Extensions[variantExtensionKey].(string); ok && variant != "" {
		tags["variant"] = variant
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

func deref(ref *openapi3.SchemaRef) *openapi3.Schema {
	if ref == nil {
		return nil
	}
	return ref.Value
}

func typeIs(src *openapi3.Schema, want string) bool {
	return src.Type != nil && src.Type.Is(want)
}

func firstType(src *openapi3.Schema) string {
	if src == nil || src.Type == nil {
		return ""
	}
	return strings.Join(src.Type.Slice(), ",")
}
