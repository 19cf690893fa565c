// Package envfile synthesizes the .env.example document for a generated
// project: variables grouped by the category of the template that
// declared them, required ones uncommented, optional ones commented out.
package envfile

import (
	"fmt"
	"strings"

	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

// Generator builds env-var template documents.
type Generator struct{}

// NewGenerator creates an envfile generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the env template from the ordered source templates.
// Grouping needs to know which template declared each variable, which the
// merged template no longer records, so this takes the pre-merge list;
// duplicate keys keep their first declaration, matching the merge rule.
func (g *Generator) Generate(sources []stack.Template) string {
	var b strings.Builder
	b.WriteString("# Environment variables\n")
	b.WriteString("# Copy to .env.local and fill in the values. Required variables are\n")
	b.WriteString("# uncommented; optional ones are commented out.\n")

	seen := map[string]bool{}
	for _, category := range stack.Categories {
		var lines []string
		for _, t := range sources {
			if t.Category != category {
				continue
			}
			for _, v := range t.EnvVars {
				if seen[v.Key] {
					continue
				}
				seen[v.Key] = true
				lines = append(lines, renderVar(v)...)
			}
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n# --- %s ---\n", category)
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderVar(v stack.EnvVar) []string {
	var lines []string
	if v.Description != "" {
		lines = append(lines, "# "+v.Description)
	}
	assignment := fmt.Sprintf("%s=%s", v.Key, v.Default)
	if !v.Required {
		assignment = "# " + assignment
	}
	return append(lines, assignment)
}
