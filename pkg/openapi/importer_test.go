package openapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modelview/pkg/model"
)

const personDocument = `{
  "openapi": "3.0.3",
  "info": {"title": "people", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "Person": {
        "type": "object",
        "properties": {
          "name": {
            "type": "string",
            "description": "Full legal name",
            "default": "anonymous"
          },
          "age": {
            "type": "integer",
            "minimum": 0,
            "maximum": 130
          },
          "score": {"type": "number"},
          "active": {"type": "boolean", "default": true},
          "id": {"type": "string", "readOnly": true},
          "secret": {"type": "string", "format": "password"},
          "role": {
            "type": "string",
            "enum": ["admin", "editor", "viewer"],
            "default": "viewer"
          },
          "home": {
            "type": "object",
            "properties": {
              "city": {"type": "string"}
            }
          }
        }
      },
      "Unsupported": {
        "type": "object",
        "properties": {
          "tags": {"type": "array", "items": {"type": "string"}}
        }
      },
      "NotAnObject": {"type": "string"}
    }
  }
}`

func importPerson(t *testing.T) *model.Schema {
	t.Helper()
	schema, err := SchemaFromDocument(context.Background(), []byte(personDocument), "Person")
	if err != nil {
		t.Fatalf("SchemaFromDocument: %v", err)
	}
	return schema
}

func TestSchemaFromDocumentKinds(t *testing.T) {
	schema := importPerson(t)

	got := map[string]model.Kind{}
	for _, attr := range schema.Attributes() {
		got[attr.Name] = attr.Kind
	}
	want := map[string]model.Kind{
		"name":   model.KindString,
		"age":    model.KindInt,
		"score":  model.KindFloat,
		"active": model.KindBool,
		"id":     model.KindString,
		"secret": model.KindString,
		"role":   model.KindEnum,
		"home":   model.KindModel,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
}

func TestSchemaFromDocumentCarriesConstraints(t *testing.T) {
	schema := importPerson(t)

	age, _ := schema.Attribute("age")
	if age.Min == nil || *age.Min != 0 || age.Max == nil || *age.Max != 130 {
		t.Errorf("age bounds = %v..%v, want 0..130", age.Min, age.Max)
	}

	name, _ := schema.Attribute("name")
	if got, _ := name.TagString("description"); got != "Full legal name" {
		t.Errorf("description tag = %q", got)
	}
	if name.Default != "anonymous" {
		t.Errorf("default = %v", name.Default)
	}

	id, _ := schema.Attribute("id")
	if !id.ReadOnly {
		t.Error("readOnly flag lost")
	}

	secret, _ := schema.Attribute("secret")
	if secret.Tags["secret"] != true {
		t.Error("password format should tag the attribute as secret")
	}

	role, _ := schema.Attribute("role")
	want := []any{"admin", "editor", "viewer"}
	if diff := cmp.Diff(want, role.Choices); diff != "" {
		t.Errorf("choices (-want +got):\n%s", diff)
	}

	home, _ := schema.Attribute("home")
	if home.Schema == nil {
		t.Fatal("nested object lost its schema")
	}
	if _, ok := home.Schema.Attribute("city"); !ok {
		t.Error("nested schema missing city")
	}
}

func TestSchemaFromDocumentAttributeOrderIsSorted(t *testing.T) {
	schema := importPerson(t)
	var order []string
	for _, attr := range schema.Attributes() {
		order = append(order, attr.Name)
	}
	want := []string{"active", "age", "home", "id", "name", "role", "score", "secret"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}
}

func TestSchemaFromDocumentFailures(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name      string
		data      string
		component string
	}{
		{"empty payload", "", "Person"},
		{"missing component", personDocument, "Nope"},
		{"non-object component", personDocument, "NotAnObject"},
		{"unsupported property type", personDocument, "Unsupported"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := SchemaFromDocument(ctx, []byte(tc.data), tc.component); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSchemaFromDocumentImportedSchemaBacksARecord(t *testing.T) {
	schema := importPerson(t)
	record, err := model.NewRecord(schema)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	if got, _ := record.Get("role"); got != "viewer" {
		t.Errorf("role default = %v, want viewer", got)
	}
	if got, _ := record.Get("active"); got != true {
		t.Errorf("active default = %v, want true", got)
	}
}
