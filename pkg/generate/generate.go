package generate

import (
	"errors"
	"fmt"
	"time"

	"github.com/JoodasCode/ignorethem-sub001/pkg/compat"
	"github.com/JoodasCode/ignorethem-sub001/pkg/generators/deploy"
	"github.com/JoodasCode/ignorethem-sub001/pkg/generators/envfile"
	"github.com/JoodasCode/ignorethem-sub001/pkg/generators/guide"
	"github.com/JoodasCode/ignorethem-sub001/pkg/merge"
	"github.com/JoodasCode/ignorethem-sub001/pkg/registry"
	"github.com/JoodasCode/ignorethem-sub001/pkg/sanitize"
	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
	"github.com/JoodasCode/ignorethem-sub001/pkg/vars"
)

// Metadata describes one generation run.
type Metadata struct {
	GeneratedAt           time.Time
	TemplateVersions      map[string]string
	EstimatedSetupMinutes int
	Warnings              []string
	Suggestions           []string
}

// Project is the final generation output. The engine does not persist it;
// callers hand it to the writer or archive it themselves.
type Project struct {
	Name        string
	Files       []stack.FileEntry
	Manifest    *stack.PackageManifest
	EnvTemplate string
	SetupGuide  string
	Metadata    Metadata
}

// Generator runs generation requests against one registry. It holds no
// per-request state, so a single Generator serves concurrent requests.
type Generator struct {
	reg *registry.Registry
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the generation timestamp source (for tests).
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator over a loaded registry.
func New(reg *registry.Registry, opts ...Option) *Generator {
	g := &Generator{reg: reg, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a project for one name and selection set.
//
// Typed failures: *NameError for a bad name, *CompatError for an illegal
// selection, *merge.CycleError for a circular dependency among the
// selected templates. Every other problem degrades to the fallback
// skeleton with a warning in the metadata.
func (g *Generator) Generate(projectName string, sel stack.SelectionSet) (*Project, error) {
	nameWarnings, err := sanitize.ValidateProjectName(projectName)
	if err != nil {
		return nil, &NameError{Name: projectName, Err: err}
	}

	compatRes := compat.Validate(sel, g.reg)
	if !compatRes.Valid() {
		return nil, &CompatError{Result: compatRes}
	}

	now := g.now()
	warnings := append([]string(nil), nameWarnings...)
	warnings = append(warnings, compatRes.Warnings...)

	sources, missing := g.reg.TemplatesFor(sel)
	for _, id := range missing {
		warnings = append(warnings, fmt.Sprintf("template %q is not in the store; skipping", id))
	}

	merged, sources, warnings, err := g.mergeOrFallback(sources, sel, warnings)
	if err != nil {
		return nil, err
	}

	sanitized := sanitize.SanitizeProjectName(projectName)
	ctx := vars.NewContext(projectName, sel, now)

	files := vars.SubstituteFiles(merged.Files, ctx)
	files, warnings = g.appendDeployFiles(files, sel, sanitized, warnings)

	manifest := g.buildManifest(sanitized, merged)
	envDoc := vars.Substitute(envfile.NewGenerator().Generate(sources), ctx)
	setupGuide := vars.Substitute(guide.NewGenerator().Generate(merged, projectName), ctx)

	versions := make(map[string]string, len(sources))
	for _, t := range sources {
		versions[t.ID] = t.Version
	}

	return &Project{
		Name:        sanitized,
		Files:       files,
		Manifest:    manifest,
		EnvTemplate: envDoc,
		SetupGuide:  setupGuide,
		Metadata: Metadata{
			GeneratedAt:           now,
			TemplateVersions:      versions,
			EstimatedSetupMinutes: estimateSetupMinutes(sources, merged),
			Warnings:              warnings,
			Suggestions:           compatRes.Suggestions,
		},
	}, nil
}

// mergeOrFallback merges the resolved templates, degrading to the bare
// framework skeleton when the store came up empty or the engine failed
// for any reason other than a genuine cycle.
func (g *Generator) mergeOrFallback(sources []stack.Template, sel stack.SelectionSet, warnings []string) (*stack.Template, []stack.Template, []string, error) {
	if len(sources) == 0 {
		warnings = append(warnings, "template store returned no templates; generating the fallback skeleton")
		fb := fallbackTemplate(sel.Framework)
		return fb, []stack.Template{*fb}, warnings, nil
	}

	res, err := merge.Merge(sources)
	if err != nil {
		var cycle *merge.CycleError
		if errors.As(err, &cycle) {
			return nil, nil, nil, cycle
		}
		warnings = append(warnings, fmt.Sprintf("merge failed (%v); generating the fallback skeleton", err))
		fb := fallbackTemplate(sel.Framework)
		return fb, []stack.Template{*fb}, warnings, nil
	}

	warnings = append(warnings, res.Warnings...)
	return res.Template, sources, warnings, nil
}

// appendDeployFiles adds the hosting descriptor unless a template already
// claimed the path.
func (g *Generator) appendDeployFiles(files []stack.FileEntry, sel stack.SelectionSet, projectName string, warnings []string) ([]stack.FileEntry, []string) {
	deployFiles, err := deploy.NewGenerator().Generate(sel.Hosting, projectName)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("skipping deployment descriptor: %v", err))
		return files, warnings
	}
	taken := make(map[string]bool, len(files))
	for _, f := range files {
		taken[f.Path] = true
	}
	for _, f := range deployFiles {
		if taken[f.Path] {
			warnings = append(warnings, fmt.Sprintf("a template already provides %q; keeping the template's version", f.Path))
			continue
		}
		files = append(files, f)
	}
	return files, warnings
}

// buildManifest folds the merged package-manifest fragments into a
// concrete package.json model.
func (g *Generator) buildManifest(projectName string, merged *stack.Template) *stack.PackageManifest {
	m := stack.NewPackageManifest(projectName)
	for k, v := range merged.Scripts {
		m.Scripts[k] = v
	}
	for k, v := range merged.PackageDeps {
		m.Dependencies[k] = v
	}
	for k, v := range merged.PackageDevDeps {
		m.DevDependencies[k] = v
	}
	return m
}

// estimateSetupMinutes is a coarse heuristic: five minutes per template
// plus one per required env var, never under five.
func estimateSetupMinutes(sources []stack.Template, merged *stack.Template) int {
	minutes := 5 * len(sources)
	for _, v := range merged.EnvVars {
		if v.Required {
			minutes++
		}
	}
	if minutes < 5 {
		minutes = 5
	}
	return minutes
}
