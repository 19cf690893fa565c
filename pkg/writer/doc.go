// Package writer materializes a generated project on disk.
//
// Generation itself is a pure in-memory transform; this package is the
// only place that touches the filesystem. It plans a list of operations,
// validates them, and executes them, resolving collisions with existing
// files through a pluggable strategy (force, skip, or an interactive
// menu with a diff view).
package writer
