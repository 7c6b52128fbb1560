// Package model defines the attribute-descriptor contract the view layer
// consumes: typed, validated, observable named slots declared once per
// schema. Schemas keep declaration order so generated views are stable across
// runs. Record is the reference implementation used by the importers, the
// examples, and the tests; any type satisfying Model (validating Set,
// synchronous observers) can back a view instead.
package model
