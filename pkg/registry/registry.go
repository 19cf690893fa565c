package registry

import (
	"sort"
	"strings"

	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

// Registry holds every loaded template, keyed by ID. Read-only after Load.
type Registry struct {
	templates map[string]*stack.Template
	order     []string // catalog order, for deterministic listings
	warnings  []string
}

// Get returns the template with the given ID. Constant time. The returned
// template is shared and must not be mutated; the merge engine clones
// before folding.
func (r *Registry) Get(id string) (*stack.Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// Len reports how many templates loaded successfully.
func (r *Registry) Len() int { return len(r.templates) }

// Warnings lists per-template problems absorbed during load.
func (r *Registry) Warnings() []string { return r.warnings }

// Templates returns every template in catalog order.
func (r *Registry) Templates() []*stack.Template {
	out := make([]*stack.Template, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id])
	}
	return out
}

// ByCategory returns templates in one category, sorted by ID.
func (r *Registry) ByCategory(c stack.Category) []*stack.Template {
	var out []*stack.Template
	for _, t := range r.templates {
		if t.Category == c {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Search does a case-insensitive substring match over ID, name, and
// description, returning matches sorted by ID.
func (r *Registry) Search(query string) []*stack.Template {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []*stack.Template
	for _, t := range r.templates {
		haystack := strings.ToLower(t.ID + " " + t.Name + " " + t.Description)
		if strings.Contains(haystack, query) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDsFor maps a selection set to the template IDs a generation merges:
// the framework choice first, then every other non-none category choice
// in canonical category order, then any registry-known dependencies of
// those, transitively. The result is deterministic and de-duplicated.
func (r *Registry) IDsFor(sel stack.SelectionSet) []string {
	seen := map[string]bool{}
	var ids []string

	add := func(id string) {
		if id == "" || id == stack.None || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}

	for _, id := range sel.Chosen() {
		add(id)
	}

	// Pull in dependency closure so base templates the user never picks
	// directly (e.g. a shared tooling bundle) still merge. The merge
	// engine handles final ordering.
	for i := 0; i < len(ids); i++ {
		if t, ok := r.templates[ids[i]]; ok {
			for _, dep := range t.Dependencies {
				add(dep)
			}
		}
	}

	return ids
}

// TemplatesFor resolves IDsFor against the store. IDs the store does not
// hold are returned separately so the caller can warn and continue.
func (r *Registry) TemplatesFor(sel stack.SelectionSet) (found []stack.Template, missing []string) {
	for _, id := range r.IDsFor(sel) {
		t, ok := r.templates[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		found = append(found, *t)
	}
	return found, missing
}
