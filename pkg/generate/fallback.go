package generate

import "github.com/JoodasCode/ignorethem-sub001/pkg/stack"

// fallbackTemplate is the bare framework skeleton used when the store
// yields nothing usable. It guarantees every generation produces at least
// one file and a manifest.
func fallbackTemplate(framework string) *stack.Template {
	if framework == "" || framework == stack.None {
		framework = "nextjs"
	}

	return &stack.Template{
		ID:       framework + "-fallback",
		Name:     "Minimal skeleton",
		Category: stack.CategoryFramework,
		Version:  "0.0.0",
		Files: []stack.FileEntry{
			{
				Path: "README.md",
				Content: "# {{projectName}}\n\n" +
					"Generated as a minimal starter. Install dependencies and run the dev server:\n\n" +
					"```bash\nnpm install\nnpm run dev\n```\n",
			},
			{
				Path: "app/page.tsx",
				Content: "export default function Home() {\n" +
					"  return <main>{{projectName}}</main>;\n" +
					"}\n",
			},
		},
		SetupSteps: []stack.SetupStep{
			{
				Step:     1,
				Title:    "Install dependencies",
				Category: stack.StepInstallation,
				Commands: []string{"npm install"},
			},
			{
				Step:     2,
				Title:    "Start the dev server",
				Category: stack.StepInstallation,
				Commands: []string{"npm run dev"},
			},
		},
		PackageDeps: map[string]string{
			"next":      "^14.2.0",
			"react":     "^18.3.0",
			"react-dom": "^18.3.0",
		},
		PackageDevDeps: map[string]string{
			"typescript":  "^5.4.0",
			"@types/node": "^20.12.0",
		},
		Scripts: map[string]string{
			"dev":   "next dev",
			"build": "next build",
			"start": "next start",
		},
	}
}
