// Package uischema carries the metadata side of view generation: a
// path-keyed metadata tree loadable from YAML/JSON files, and the resolver
// that merges caller overrides, tree entries, descriptor tags and derived
// defaults into the effective configuration for one attribute occurrence.
// The core stays unaware of where metadata files live; callers hand in an
// fs.FS or build trees programmatically.
package uischema
