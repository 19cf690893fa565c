package compat

import (
	"fmt"

	"github.com/JoodasCode/ignorethem-sub001/pkg/registry"
	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

// Result carries the outcome of validating one selection set.
type Result struct {
	Errors      []string
	Warnings    []string
	Suggestions []string
}

// Valid reports whether the selection may proceed to the merge engine.
func (r *Result) Valid() bool { return len(r.Errors) == 0 }

// Validate checks a selection set against the static compatibility table
// and the selected templates' own manifests.
//
// Hard errors: any two selected IDs appearing in each other's conflict
// list (table- or manifest-declared), or a selected template depending on
// a selectable template that was not selected. Base-category dependencies
// are exempt: the registry includes those automatically.
func Validate(sel stack.SelectionSet, reg *registry.Registry) *Result {
	res := &Result{}
	selected := sel.Chosen()
	selectedSet := make(map[string]bool, len(selected))
	for _, id := range selected {
		selectedSet[id] = true
	}

	for _, id := range selected {
		entry, inTable := Lookup(id)
		if inTable {
			for _, other := range entry.ConflictsWith {
				if selectedSet[other] {
					res.Errors = append(res.Errors, fmt.Sprintf("%s cannot be combined with %s", id, other))
				}
			}
			res.Warnings = append(res.Warnings, entry.Warnings...)
		}

		tpl, known := reg.Get(id)
		if !known {
			continue
		}
		for _, other := range tpl.Conflicts {
			if selectedSet[other] && !conflictAlreadyReported(res.Errors, id, other) {
				res.Errors = append(res.Errors, fmt.Sprintf("%s cannot be combined with %s", id, other))
			}
		}
		for _, dep := range tpl.Dependencies {
			if selectedSet[dep] {
				continue
			}
			if depTpl, ok := reg.Get(dep); ok && depTpl.Category == stack.CategoryBase {
				continue
			}
			res.Errors = append(res.Errors, fmt.Sprintf("%s requires %s, which is not selected", id, dep))
		}
	}

	dedupeConflictPairs(res)
	res.Suggestions = suggestions(sel)
	return res
}

// suggestions emits non-binding nudges for common gaps.
func suggestions(sel stack.SelectionSet) []string {
	var out []string
	if sel.Authentication != stack.None && sel.Database == stack.None {
		out = append(out, "authentication selected but no database selected; user accounts usually need persistence")
	}
	if sel.Payments != stack.None && sel.Authentication == stack.None {
		out = append(out, "payments selected but no authentication selected; subscriptions need user identity")
	}
	if sel.Authentication != stack.None && sel.Email == stack.None {
		out = append(out, "no email provider selected; password resets and magic links will need one")
	}
	if sel.Monitoring == stack.None && sel.Payments != stack.None {
		out = append(out, "consider an error-monitoring service when taking payments")
	}
	return out
}

// conflictAlreadyReported avoids repeating a pair the table already flagged.
func conflictAlreadyReported(errors []string, a, b string) bool {
	msg := fmt.Sprintf("%s cannot be combined with %s", a, b)
	rev := fmt.Sprintf("%s cannot be combined with %s", b, a)
	for _, e := range errors {
		if e == msg || e == rev {
			return true
		}
	}
	return false
}

// dedupeConflictPairs collapses the mirrored form of each conflict so a
// pair is reported once.
func dedupeConflictPairs(res *Result) {
	seen := map[string]bool{}
	out := res.Errors[:0]
	for _, e := range res.Errors {
		if seen[e] {
			continue
		}
		seen[e] = true
		// Mark the mirrored phrasing as seen too.
		var a, b string
		if n, _ := fmt.Sscanf(e, "%s cannot be combined with %s", &a, &b); n == 2 {
			seen[fmt.Sprintf("%s cannot be combined with %s", b, a)] = true
		}
		out = append(out, e)
	}
	res.Errors = out
}
