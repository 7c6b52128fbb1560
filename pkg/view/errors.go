package view

import (
	"fmt"
	"strings"
)

// CyclicModelError reports a schema reached again through its own nested
// attributes. Construction aborts; no partial widget tree is returned.
type CyclicModelError struct {
	Path   []string
	Schema string
}

func (e *CyclicModelError) Error() string {
	at := strings.Join(e.Path, ".")
	if at == "" {
		at = "<root>"
	}
	return fmt.Sprintf("view: schema %q is nested inside itself (at %s)", e.Schema, at)
}

// FactoryResultError reports a metadata "factory" entry that is not a
// supported factory function.
type FactoryResultError struct {
	Path []string
}

func (e *FactoryResultError) Error() string {
	return fmt.Sprintf("view: metadata factory for %s is neither a WidgetFactory nor a ConstructorFactory", strings.Join(e.Path, "."))
}
