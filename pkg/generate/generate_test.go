package generate

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoodasCode/ignorethem-sub001/pkg/merge"
	"github.com/JoodasCode/ignorethem-sub001/pkg/registry"
	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func defaultGenerator(t *testing.T) *Generator {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)
	return New(reg, WithClock(fixedClock))
}

func emptyGenerator(t *testing.T) *Generator {
	t.Helper()
	reg, err := registry.Load(fstest.MapFS{})
	require.NoError(t, err)
	return New(reg, WithClock(fixedClock))
}

func TestGenerate_FullStack(t *testing.T) {
	sel := stack.DefaultSelections("nextjs")
	sel.Authentication = "clerk"
	sel.Database = "supabase"
	sel.Payments = "stripe"
	sel.UI = "shadcn"
	sel.Hosting = "vercel"

	project, err := defaultGenerator(t).Generate("My Awesome Project", sel)
	require.NoError(t, err)

	assert.Equal(t, "my-awesome-project", project.Name)
	assert.NotEmpty(t, project.Files)
	require.NotNil(t, project.Manifest)
	assert.Equal(t, "my-awesome-project", project.Manifest.Name)
	assert.Contains(t, project.Manifest.Dependencies, "next")
	assert.Contains(t, project.Manifest.Dependencies, "@clerk/nextjs")
	assert.NotEmpty(t, project.EnvTemplate)
	assert.NotEmpty(t, project.SetupGuide)
	assert.Equal(t, fixedNow, project.Metadata.GeneratedAt)

	// Every selected template shows up in the version index.
	for _, id := range []string{"nextjs", "clerk", "supabase", "stripe", "shadcn", "base-tooling"} {
		assert.Contains(t, project.Metadata.TemplateVersions, id)
	}

	paths := map[string]bool{}
	for _, f := range project.Files {
		assert.False(t, paths[f.Path], "duplicate path %q", f.Path)
		paths[f.Path] = true
	}
	assert.True(t, paths["vercel.json"])
}

func TestGenerate_TokensResolved(t *testing.T) {
	sel := stack.DefaultSelections("nextjs")

	project, err := defaultGenerator(t).Generate("My Awesome Project", sel)
	require.NoError(t, err)

	var readme string
	for _, f := range project.Files {
		if f.Path == "README.md" {
			readme = f.Content
		}
	}
	require.NotEmpty(t, readme)
	assert.Contains(t, readme, "My Awesome Project")
	assert.NotContains(t, readme, "{{projectName}}")
}

func TestGenerate_EmptyStoreFallsBack(t *testing.T) {
	project, err := emptyGenerator(t).Generate("test-project", stack.SelectionSet{})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(project.Files), 1)
	require.NotNil(t, project.Manifest)
	assert.Equal(t, "test-project", project.Manifest.Name)
	assert.Contains(t, project.Manifest.Dependencies, "next")
	assert.NotEmpty(t, project.Metadata.Warnings)

	// Fallback files still get their tokens substituted.
	for _, f := range project.Files {
		assert.NotContains(t, f.Content, "{{projectName}}", f.Path)
	}
}

func TestGenerate_InvalidName(t *testing.T) {
	_, err := defaultGenerator(t).Generate("../escape", stack.DefaultSelections("nextjs"))
	require.Error(t, err)

	var nameErr *NameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "../escape", nameErr.Name)
	assert.NotNil(t, nameErr.Unwrap())
}

func TestGenerate_IncompatibleSelection(t *testing.T) {
	sel := stack.DefaultSelections("nextjs")
	sel.Database = "supabase"
	sel.Analytics = "mongodb"

	_, err := defaultGenerator(t).Generate("valid-name", sel)
	require.Error(t, err)

	var compatErr *CompatError
	require.ErrorAs(t, err, &compatErr)
	require.NotNil(t, compatErr.Result)
	assert.NotEmpty(t, compatErr.Result.Errors)
}

func TestGenerate_CyclePropagates(t *testing.T) {
	fsys := fstest.MapFS{
		"x/template.yml": &fstest.MapFile{Data: []byte(`
id: x
name: X
category: framework
version: 1.0.0
dependencies: [y]
`)},
		"y/template.yml": &fstest.MapFile{Data: []byte(`
id: y
name: Y
category: base
version: 1.0.0
dependencies: [x]
`)},
	}
	reg, err := registry.Load(fsys)
	require.NoError(t, err)

	sel := stack.DefaultSelections("x")
	_, err = New(reg, WithClock(fixedClock)).Generate("cyclic", sel)
	require.Error(t, err)

	var cycleErr *merge.CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.NotEmpty(t, cycleErr.Chain)
}

func TestGenerate_MissingTemplateWarnsAndContinues(t *testing.T) {
	sel := stack.DefaultSelections("nextjs")
	sel.Analytics = "plausible" // not in the catalog

	project, err := defaultGenerator(t).Generate("my-app", sel)
	require.NoError(t, err)

	found := false
	for _, w := range project.Metadata.Warnings {
		if strings.Contains(w, "plausible") && strings.Contains(w, "not in the store") {
			found = true
		}
	}
	assert.True(t, found, "expected a missing-template warning, got %v", project.Metadata.Warnings)
}

func TestGenerate_HostingDescriptors(t *testing.T) {
	for _, hosting := range []string{"vercel", "railway", "render", "docker"} {
		sel := stack.DefaultSelections("nextjs")
		sel.Hosting = hosting

		project, err := defaultGenerator(t).Generate("hosted-app", sel)
		require.NoError(t, err, hosting)

		var descriptorFound bool
		for _, f := range project.Files {
			switch f.Path {
			case "vercel.json", "railway.toml", "render.yaml", "Dockerfile":
				descriptorFound = true
			}
		}
		assert.True(t, descriptorFound, hosting)
	}
}

func TestGenerate_UnknownHostingWarns(t *testing.T) {
	sel := stack.DefaultSelections("nextjs")
	sel.Hosting = "punchcards"

	project, err := defaultGenerator(t).Generate("my-app", sel)
	require.NoError(t, err)
	assert.NotEmpty(t, project.Metadata.Warnings)
}

func TestGenerate_SetupEstimate(t *testing.T) {
	sel := stack.DefaultSelections("nextjs")
	project, err := defaultGenerator(t).Generate("my-app", sel)
	require.NoError(t, err)
	// nextjs + base-tooling at five minutes each, plus required env vars.
	assert.GreaterOrEqual(t, project.Metadata.EstimatedSetupMinutes, 10)

	fallback, err := emptyGenerator(t).Generate("my-app", stack.SelectionSet{})
	require.NoError(t, err)
	assert.Equal(t, 5, fallback.Metadata.EstimatedSetupMinutes)
}

func TestGenerate_ConcurrentUse(t *testing.T) {
	gen := defaultGenerator(t)
	sel := stack.DefaultSelections("nextjs")

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := gen.Generate("parallel-app", sel)
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-done)
	}
}
