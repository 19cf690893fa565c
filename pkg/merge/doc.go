// Package merge implements the template merge engine: it orders a set of
// technology templates by dependency, folds them into a single merged
// template, and resolves file conflicts with per-file-type strategies.
//
// The engine is a pure in-memory transform. Input templates are never
// mutated; the fold works on a clone of the dependency-root template.
// Anything wrong with template data (unsafe paths, unparseable config)
// degrades with a warning instead of failing the merge; the only fatal
// condition is a genuine circular dependency.
package merge
