// Package compat decides whether a selection set is legal before any
// merge work starts. It is the sole authority on combination legality:
// hard errors (mutual conflicts, unmet prerequisites) make a selection
// unusable, warnings and suggestions are advisory only.
package compat
