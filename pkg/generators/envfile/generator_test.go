package envfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

func TestGenerate_GroupsByCategory(t *testing.T) {
	sources := []stack.Template{
		{
			ID: "supabase", Category: stack.CategoryDatabase,
			EnvVars: []stack.EnvVar{
				{Key: "SUPABASE_URL", Description: "Project URL", Required: true},
				{Key: "SUPABASE_ANON_KEY", Required: true},
			},
		},
		{
			ID: "nextjs", Category: stack.CategoryFramework,
			EnvVars: []stack.EnvVar{
				{Key: "NEXT_PUBLIC_APP_URL", Required: true, Default: "http://localhost:3000"},
			},
		},
		{
			ID: "posthog", Category: stack.CategoryAnalytics,
			EnvVars: []stack.EnvVar{
				{Key: "NEXT_PUBLIC_POSTHOG_KEY", Description: "Project API key"},
			},
		},
	}

	doc := NewGenerator().Generate(sources)

	// Sections appear in canonical category order regardless of input order.
	framework := strings.Index(doc, "# --- framework ---")
	database := strings.Index(doc, "# --- database ---")
	analytics := strings.Index(doc, "# --- analytics ---")
	require.True(t, framework >= 0 && database >= 0 && analytics >= 0, doc)
	assert.Less(t, framework, database)
	assert.Less(t, database, analytics)

	assert.Contains(t, doc, "NEXT_PUBLIC_APP_URL=http://localhost:3000")
	assert.Contains(t, doc, "# Project URL\nSUPABASE_URL=")
	// Optional vars come commented out.
	assert.Contains(t, doc, "# NEXT_PUBLIC_POSTHOG_KEY=")
}

func TestGenerate_DuplicateKeysKeepFirst(t *testing.T) {
	sources := []stack.Template{
		{ID: "a", Category: stack.CategoryFramework, EnvVars: []stack.EnvVar{
			{Key: "SHARED_KEY", Description: "from a", Required: true},
		}},
		{ID: "b", Category: stack.CategoryDatabase, EnvVars: []stack.EnvVar{
			{Key: "SHARED_KEY", Description: "from b"},
		}},
	}

	doc := NewGenerator().Generate(sources)
	assert.Equal(t, 1, strings.Count(doc, "SHARED_KEY="))
	assert.Contains(t, doc, "from a")
	assert.NotContains(t, doc, "from b")
}

func TestGenerate_NoVars(t *testing.T) {
	doc := NewGenerator().Generate([]stack.Template{{ID: "bare", Category: stack.CategoryFramework}})
	assert.Contains(t, doc, "# Environment variables")
	assert.NotContains(t, doc, "# ---")
}
