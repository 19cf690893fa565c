package vars

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

// tokenPattern matches {{identifier}} and {{identifier.identifier...}}.
var tokenPattern = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)\}\}`)

// Context holds substitution values. Leaves are strings (substituted) or
// nil (token preserved); interior nodes are nested map[string]any.
type Context map[string]any

// NewContext builds the standard substitution context for one generation:
// the raw project name, its three derived case forms, the dot-addressable
// selection set, a generation timestamp, and the current year.
func NewContext(projectName string, sel stack.SelectionSet, now time.Time) Context {
	return Context{
		"projectName":       projectName,
		"projectNameKebab":  KebabCase(projectName),
		"projectNamePascal": PascalCase(projectName),
		"projectNameCamel":  CamelCase(projectName),
		"selections":        sel.Export(),
		"timestamp":         now.UTC().Format(time.RFC3339),
		"year":              strconv.Itoa(now.Year()),
	}
}

// Resolve looks up a dotted path. ok is false for a missing path, for an
// explicit nil leaf, and for a path that stops on an interior node; in
// all three cases the caller leaves the token untouched. An empty string
// leaf resolves with ok=true.
func (c Context) Resolve(path string) (string, bool) {
	var current any = map[string]any(c)
	for _, part := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		next, ok := node[part]
		if !ok {
			return "", false
		}
		current = next
	}

	switch v := current.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	default:
		return "", false
	}
}

// Substitute rewrites every {{token}} in s that resolves against ctx.
// Unresolved tokens survive verbatim.
func Substitute(s string, ctx Context) string {
	return tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		path := match[2 : len(match)-2]
		if value, ok := ctx.Resolve(path); ok {
			return value
		}
		return match
	})
}

// SubstituteFiles applies Substitute to every file's content and path,
// returning a new slice. Input entries are not mutated.
func SubstituteFiles(files []stack.FileEntry, ctx Context) []stack.FileEntry {
	out := make([]stack.FileEntry, len(files))
	for i, f := range files {
		f.Path = Substitute(f.Path, ctx)
		f.Content = Substitute(f.Content, ctx)
		out[i] = f
	}
	return out
}
