package merge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

// CycleError reports a circular dependency among the input templates.
// The chain lists the IDs along the cycle, ending where it closes.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular template dependency: %s", strings.Join(e.Chain, " -> "))
}

// visit states for the depth-first walk.
const (
	unvisited = iota
	inProgress
	done
)

// topoSort orders templates so every template appears after all templates
// it depends on. Dependencies naming IDs outside the input set are ignored
// for ordering (the user may simply not have selected them) with a
// warning. A cycle is fatal; any other irregularity falls back to a
// deterministic lexicographic order rather than failing the merge.
func topoSort(templates []stack.Template) ([]stack.Template, []string, error) {
	var warnings []string

	byID := make(map[string]*stack.Template, len(templates))
	var ids []string
	for i := range templates {
		t := &templates[i]
		if _, dup := byID[t.ID]; dup {
			warnings = append(warnings, fmt.Sprintf("duplicate template %q in merge input; keeping the first", t.ID))
			continue
		}
		byID[t.ID] = t
		ids = append(ids, t.ID)
	}

	state := make(map[string]int, len(ids))
	ordered := make([]stack.Template, 0, len(ids))
	var pathStack []string

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case done:
			return nil
		case inProgress:
			// Close the chain at the repeated ID for a readable report.
			chain := append(trimChain(pathStack, id), id)
			return &CycleError{Chain: chain}
		}
		state[id] = inProgress
		pathStack = append(pathStack, id)

		for _, dep := range byID[id].Dependencies {
			if _, known := byID[dep]; !known {
				warnings = append(warnings, fmt.Sprintf("template %q depends on %q, which is not part of this merge; ignoring for ordering", id, dep))
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		pathStack = pathStack[:len(pathStack)-1]
		state[id] = done
		ordered = append(ordered, *byID[id])
		return nil
	}

	for _, id := range ids {
		if err := visit(id); err != nil {
			return nil, warnings, err
		}
	}

	// A completed walk always emits every unique input exactly once. If
	// that ever stops holding, order lexicographically instead of
	// returning a half-sorted list.
	if len(ordered) != len(ids) {
		warnings = append(warnings, "dependency sort produced an incomplete order; falling back to lexicographic order")
		ordered = ordered[:0]
		sortedIDs := append([]string(nil), ids...)
		sort.Strings(sortedIDs)
		for _, id := range sortedIDs {
			ordered = append(ordered, *byID[id])
		}
	}

	return ordered, warnings, nil
}

// trimChain drops the prefix of the visit stack that precedes the first
// occurrence of id, so the reported chain starts where the cycle does.
func trimChain(chain []string, id string) []string {
	for i, v := range chain {
		if v == id {
			return append([]string(nil), chain[i:]...)
		}
	}
	return append([]string(nil), chain...)
}
