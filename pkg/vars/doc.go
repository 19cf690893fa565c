// Package vars implements the {{token}} substitution pass that runs over
// merged template files.
//
// Tokens are dotted paths resolved against a small typed context built
// from the project name and the selection set. A token that resolves to a
// missing path or an explicit nil is left in the output verbatim, since
// templates leave some tokens for later manual resolution. An empty-string
// value is different: it substitutes normally.
package vars
