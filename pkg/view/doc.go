// Package view builds bound widget trees from model schemas.
//
// A Factory walks a schema, resolves per-attribute metadata, selects a
// widget variant through the registry, and wires each leaf widget to the
// model through a two-way binding. Nested model attributes become nested
// forms; the resulting tree is navigated through Form.Children and
// Form.Walk.
package view
