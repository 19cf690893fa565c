// Package guide synthesizes the human-readable setup guide from a merged
// template's already-ordered setup steps, grouped by instruction category
// in the fixed order installation, configuration, deployment, testing.
package guide

import (
	"fmt"
	"strings"

	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

// headings maps step categories to guide section titles.
var headings = map[stack.StepCategory]string{
	stack.StepInstallation:  "Installation",
	stack.StepConfiguration: "Configuration",
	stack.StepDeployment:    "Deployment",
	stack.StepTesting:       "Testing",
}

// Generator builds setup guides.
type Generator struct{}

// NewGenerator creates a guide generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders SETUP.md for a merged template. Steps keep their
// merged order within each category; numbering is continuous across the
// whole guide. Steps with an unrecognized category land in a trailing
// "Other" section rather than disappearing.
func (g *Generator) Generate(merged *stack.Template, projectName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Setup Guide: %s\n", projectName)

	n := 0
	writeStep := func(s stack.SetupStep) {
		n++
		fmt.Fprintf(&b, "\n%d. **%s**", n, s.Title)
		if s.Description != "" {
			fmt.Fprintf(&b, " — %s", s.Description)
		}
		b.WriteString("\n")
		if len(s.Commands) > 0 {
			b.WriteString("\n   ```bash\n")
			for _, cmd := range s.Commands {
				fmt.Fprintf(&b, "   %s\n", cmd)
			}
			b.WriteString("   ```\n")
		}
	}

	grouped := map[stack.StepCategory][]stack.SetupStep{}
	var other []stack.SetupStep
	for _, s := range merged.SetupSteps {
		if _, known := headings[s.Category]; known {
			grouped[s.Category] = append(grouped[s.Category], s)
		} else {
			other = append(other, s)
		}
	}

	for _, category := range stack.StepCategories {
		steps := grouped[category]
		if len(steps) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n", headings[category])
		for _, s := range steps {
			writeStep(s)
		}
	}
	if len(other) > 0 {
		b.WriteString("\n## Other\n")
		for _, s := range other {
			writeStep(s)
		}
	}

	if len(merged.EnvVars) > 0 {
		b.WriteString("\n## Environment variables\n\n")
		b.WriteString("Fill these in `.env.local` before starting the app:\n\n")
		for _, v := range merged.EnvVars {
			marker := "optional"
			if v.Required {
				marker = "required"
			}
			fmt.Fprintf(&b, "- `%s` (%s)", v.Key, marker)
			if v.Description != "" {
				fmt.Fprintf(&b, " — %s", v.Description)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
