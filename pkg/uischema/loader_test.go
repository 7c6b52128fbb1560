package uischema

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadFS_MergesYAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"person.yaml": &fstest.MapFile{Data: []byte(`
attributes:
  name:
    options:
      description: Full name
  address:
    attributes:
      city:
        options:
          placeholder: City
`)},
		"extra.json": &fstest.MapFile{Data: []byte(`{
  "attributes": {
    "name": {"options": {"placeholder": "e.g. Ada"}}
  }
}`)},
		"README.md": &fstest.MapFile{Data: []byte("ignored")},
	}

	tree, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	options, ok := tree.Lookup([]string{"name"})
	if !ok {
		t.Fatal("missing name node")
	}
	if options["description"] != "Full name" || options["placeholder"] != "e.g. Ada" {
		t.Fatalf("merged options = %v", options)
	}

	options, ok = tree.Lookup([]string{"address", "city"})
	if !ok || options["placeholder"] != "City" {
		t.Fatalf("nested lookup = %v (ok=%v)", options, ok)
	}

	if _, ok := tree.Lookup([]string{"address", "street"}); ok {
		t.Fatal("lookup invented a node")
	}
}

func TestLoadFS_DuplicateOptionKeyFails(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("attributes:\n  name:\n    options:\n      description: A\n")},
		"b.yaml": &fstest.MapFile{Data: []byte("attributes:\n  name:\n    options:\n      description: B\n")},
	}

	_, err := LoadFS(fsys)
	if err == nil {
		t.Fatal("expected duplicate option error")
	}
	if !strings.Contains(err.Error(), `option "description"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	tree, err := LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !tree.Empty() {
		t.Fatal("expected empty tree")
	}
}
