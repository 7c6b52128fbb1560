package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type document struct {
	Attributes map[string]*Node `yaml:"attributes" json:"attributes"`
}

// LoadFS walks the provided filesystem and merges every JSON/YAML metadata
// file into one tree. A nil filesystem or an empty one yields an empty tree.
// Conflicting option keys for the same path across files are an error.
func LoadFS(fsys fs.FS) (*Tree, error) {
	tree := NewTree(make(map[string]*Node))
	if fsys == nil {
		return tree, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isMetadataFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		if len(doc.Attributes) == 0 {
			return nil
		}
		return tree.merge(NewTree(doc.Attributes), path)
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

func parseDocument(data []byte, path string) (document, error) {
	var doc document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("uischema: parse %s: %w", path, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("uischema: parse %s: %w", path, err)
	}
	return doc, nil
}

func isMetadataFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func mergeNodes(dst, src map[string]*Node, path []string, source string) error {
	for name, incoming := range src {
		if incoming == nil {
			continue
		}
		at := append(append([]string(nil), path...), name)
		existing, ok := dst[name]
		if !ok {
			dst[name] = incoming
			continue
		}
		for key, value := range incoming.Options {
			if _, dup := existing.Options[key]; dup {
				return fmt.Errorf("uischema: file %s redefines option %q for path %q", source, key, PathKey(at))
			}
			if existing.Options == nil {
				existing.Options = make(map[string]any)
			}
			existing.Options[key] = value
		}
		if len(incoming.Children) > 0 {
			if existing.Children == nil {
				existing.Children = make(map[string]*Node)
			}
			if err := mergeNodes(existing.Children, incoming.Children, at, source); err != nil {
				return err
			}
		}
	}
	return nil
}
