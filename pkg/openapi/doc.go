// Package openapi imports OpenAPI 3 component schemas as model schemas, so
// documents that already describe a data shape can drive view generation
// without a hand-written schema.
package openapi
