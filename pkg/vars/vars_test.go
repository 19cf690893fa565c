package vars

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

func testContext(t *testing.T) Context {
	t.Helper()
	sel := stack.DefaultSelections("nextjs")
	sel.Database = "supabase"
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return NewContext("My Awesome Project", sel, now)
}

func TestSubstitute_ProjectNameForms(t *testing.T) {
	ctx := testContext(t)
	input := "{{projectNameKebab}} {{projectNamePascal}} {{projectNameCamel}} {{projectName}}"
	got := Substitute(input, ctx)
	assert.Equal(t, "my-awesome-project MyAwesomeProject myAwesomeProject My Awesome Project", got)
}

func TestSubstitute_Selections(t *testing.T) {
	ctx := testContext(t)
	assert.Equal(t, "supabase", Substitute("{{selections.database}}", ctx))
	// The None sentinel is a real value, not a missing path.
	assert.Equal(t, "none", Substitute("{{selections.payments}}", ctx))
}

func TestSubstitute_TimestampAndYear(t *testing.T) {
	ctx := testContext(t)
	assert.Equal(t, "2024-06-01T12:00:00Z", Substitute("{{timestamp}}", ctx))
	assert.Equal(t, "2024", Substitute("{{year}}", ctx))
}

func TestSubstitute_UnknownTokenPreserved(t *testing.T) {
	ctx := testContext(t)
	assert.Equal(t, "{{totallyUnknownKey}}", Substitute("{{totallyUnknownKey}}", ctx))
	assert.Equal(t, "{{selections.nope.deeper}}", Substitute("{{selections.nope.deeper}}", ctx))
}

// The three-way distinction: absent path and explicit nil both preserve
// the token; an empty string substitutes normally.
func TestResolve_ThreeWayDistinction(t *testing.T) {
	ctx := Context{
		"present": "value",
		"empty":   "",
		"null":    nil,
		"nested":  map[string]any{"null": nil, "empty": ""},
	}

	v, ok := ctx.Resolve("present")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	v, ok = ctx.Resolve("empty")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = ctx.Resolve("null")
	assert.False(t, ok)

	_, ok = ctx.Resolve("absent")
	assert.False(t, ok)

	_, ok = ctx.Resolve("nested.null")
	assert.False(t, ok)

	v, ok = ctx.Resolve("nested.empty")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	// An interior node is not a substitutable value.
	_, ok = ctx.Resolve("nested")
	assert.False(t, ok)
}

func TestSubstitute_EmptyVsNull(t *testing.T) {
	ctx := Context{"empty": "", "null": nil}
	assert.Equal(t, "[]", Substitute("[{{empty}}]", ctx))
	assert.Equal(t, "[{{null}}]", Substitute("[{{null}}]", ctx))
}

func TestSubstituteFiles_RewritesPathsAndContent(t *testing.T) {
	ctx := testContext(t)
	files := []stack.FileEntry{
		{Path: "src/{{projectNameKebab}}.config.ts", Content: "export const name = \"{{projectNamePascal}}\";\n"},
	}
	got := SubstituteFiles(files, ctx)
	assert.Equal(t, "src/my-awesome-project.config.ts", got[0].Path)
	assert.Equal(t, "export const name = \"MyAwesomeProject\";\n", got[0].Content)
	// Input untouched.
	assert.Equal(t, "src/{{projectNameKebab}}.config.ts", files[0].Path)
}
