// Package registry implements the template store: it loads every
// technology template from a catalog tree at startup, validates each one
// structurally, and serves lookups for the rest of the pipeline.
//
// A registry is built once and read many times. After Load returns it is
// never mutated, so a single registry can back any number of concurrent
// generation requests. A corrupt template never fails the load; it is
// skipped with a warning and the catalog continues.
package registry
