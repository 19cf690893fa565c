package merge

import (
	"errors"
	"fmt"
	"sort"

	"github.com/JoodasCode/ignorethem-sub001/pkg/sanitize"
	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

// ErrNoTemplates is returned when Merge is called with an empty list.
var ErrNoTemplates = errors.New("no templates to merge")

// Result is a merged template plus the warnings accumulated while
// producing it: dropped unsafe paths, fallback conflict resolutions,
// ordering irregularities.
type Result struct {
	Template *stack.Template
	Warnings []string
}

// Merge orders templates by dependency and folds them into one.
//
// The returned error is non-nil only for an empty input or a circular
// dependency (*CycleError); every template-data problem degrades into a
// warning on the result instead.
func Merge(templates []stack.Template) (*Result, error) {
	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}

	ordered, warnings, err := topoSort(templates)
	if err != nil {
		return nil, err
	}

	res := &Result{Warnings: warnings}

	acc := ordered[0].Clone()
	acc.Files = res.safeFiles(acc.Files, acc.ID)
	for i := 1; i < len(ordered); i++ {
		res.foldInto(acc, &ordered[i])
	}

	renumberSteps(acc)
	res.Template = acc
	return res, nil
}

// MergeTemplates is the plain-template entry point: same semantics as
// Merge, warnings discarded. Exposed for callers that only need the fold.
func MergeTemplates(templates []stack.Template) (*stack.Template, error) {
	res, err := Merge(templates)
	if err != nil {
		return nil, err
	}
	return res.Template, nil
}

// foldInto merges one incoming template into the accumulator.
func (r *Result) foldInto(acc *stack.Template, incoming *stack.Template) {
	r.mergeFiles(acc, incoming)
	r.mergeEnvVars(acc, incoming)
	r.mergeSetupSteps(acc, incoming)
	r.mergeManifestFragments(acc, incoming)
}

// safeFiles drops entries with unsafe paths or oversized content and
// normalizes line endings on the rest.
func (r *Result) safeFiles(files []stack.FileEntry, templateID string) []stack.FileEntry {
	out := files[:0:0]
	for _, f := range files {
		if err := sanitize.ValidateFilePath(f.Path); err != nil {
			r.warnf("template %q: dropping file: %v", templateID, err)
			continue
		}
		content, err := sanitize.SanitizeFileContent(f.Content)
		if err != nil {
			r.warnf("template %q: dropping file %q: %v", templateID, f.Path, err)
			continue
		}
		f.Content = content
		out = append(out, f)
	}
	return out
}

func (r *Result) mergeFiles(acc *stack.Template, incoming *stack.Template) {
	index := make(map[string]int, len(acc.Files))
	for i, f := range acc.Files {
		index[f.Path] = i
	}

	for _, f := range r.safeFiles(incoming.Files, incoming.ID) {
		i, exists := index[f.Path]
		if !exists {
			acc.Files = append(acc.Files, f)
			index[f.Path] = len(acc.Files) - 1
			continue
		}

		existing := acc.Files[i]
		switch {
		case f.Overwrite:
			acc.Files[i] = f

		default:
			strategy, ok := strategyFor(f.Path)
			if !ok {
				r.warnf("template %q replaces %q (no merge strategy for this file type)", incoming.ID, f.Path)
				acc.Files[i] = f
				continue
			}
			merged := strategy.Merge(existing.Content, f.Content)
			if merged.Fallback {
				r.warnf("template %q: %s merge of %q fell back to conflict markers: %s", incoming.ID, strategy.Name(), f.Path, merged.Reason)
			}
			f.Content = merged.Content
			acc.Files[i] = f
		}
	}
}

// mergeEnvVars appends incoming variables whose key is new; first-seen
// wins on duplicates.
func (r *Result) mergeEnvVars(acc *stack.Template, incoming *stack.Template) {
	seen := make(map[string]bool, len(acc.EnvVars))
	for _, v := range acc.EnvVars {
		seen[v.Key] = true
	}
	for _, v := range incoming.EnvVars {
		if seen[v.Key] {
			continue
		}
		seen[v.Key] = true
		acc.EnvVars = append(acc.EnvVars, v)
	}
}

// mergeSetupSteps shifts incoming step numbers past the current maximum
// and re-sorts the combined list.
func (r *Result) mergeSetupSteps(acc *stack.Template, incoming *stack.Template) {
	maxStep := 0
	for _, s := range acc.SetupSteps {
		if s.Step > maxStep {
			maxStep = s.Step
		}
	}
	for _, s := range incoming.SetupSteps {
		s.Step += maxStep
		acc.SetupSteps = append(acc.SetupSteps, s)
	}
	sort.SliceStable(acc.SetupSteps, func(i, j int) bool {
		return acc.SetupSteps[i].Step < acc.SetupSteps[j].Step
	})
}

// mergeManifestFragments shallow-merges dependency, dev-dependency, and
// script maps. Later templates win: they sit closer to the leaf of the
// dependency graph and are more specific.
func (r *Result) mergeManifestFragments(acc *stack.Template, incoming *stack.Template) {
	if acc.PackageDeps == nil {
		acc.PackageDeps = map[string]string{}
	}
	if acc.PackageDevDeps == nil {
		acc.PackageDevDeps = map[string]string{}
	}
	if acc.Scripts == nil {
		acc.Scripts = map[string]string{}
	}
	for k, v := range incoming.PackageDeps {
		acc.PackageDeps[k] = v
	}
	for k, v := range incoming.PackageDevDeps {
		acc.PackageDevDeps[k] = v
	}
	for k, v := range incoming.Scripts {
		acc.Scripts[k] = v
	}
}

// renumberSteps rewrites step numbers into a single ascending 1..n
// sequence, preserving the sorted order.
func renumberSteps(t *stack.Template) {
	for i := range t.SetupSteps {
		t.SetupSteps[i].Step = i + 1
	}
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
