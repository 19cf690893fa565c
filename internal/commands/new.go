package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JoodasCode/ignorethem-sub001/internal/wizard"
	"github.com/JoodasCode/ignorethem-sub001/pkg/generate"
	"github.com/JoodasCode/ignorethem-sub001/pkg/output"
	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
	"github.com/JoodasCode/ignorethem-sub001/pkg/writer"
)

// NewCmd creates the 'new' command: generate a starter project.
func NewCmd() *cobra.Command {
	var (
		sel          stack.SelectionSet
		templatesDir string
		outputDir    string
		interactive  bool
		dryRun       bool
		force        bool
		skip         bool
	)

	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Generate a new starter project",
		Long: `Generates a starter codebase from your technology selections.

With no selection flags, an interactive wizard walks through the
choices. With flags, generation is fully non-interactive:

  ignorethem new my-app --framework nextjs --auth clerk --database supabase`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			reg, cfg, err := loadRegistry(templatesDir)
			if err != nil {
				exitErr(err)
			}

			projectName := ""
			if len(args) == 1 {
				projectName = args[0]
			}

			interviewed := false
			if interactive || !selectionFlagsUsed(cmd) {
				defaultName := projectName
				if defaultName == "" {
					defaultName = "my-app"
				}
				answers, err := wizard.Run(reg, defaultName)
				if err != nil {
					if errors.Is(err, wizard.ErrCancelled) {
						output.Info("Cancelled.")
						return
					}
					exitErr(err)
				}
				projectName = answers.ProjectName
				sel = answers.Selections
				interviewed = true
			}
			if projectName == "" {
				exitErr(errors.New("project name required (pass it as an argument or use the wizard)"))
			}
			if !interviewed {
				fillSelectionDefaults(&sel)
				applyConfigDefaults(&sel, cmd.Flags().Changed("hosting"), cfg)
			}

			gen := generate.New(reg)
			project, err := gen.Generate(projectName, sel)
			if err != nil {
				reportGenerateError(err)
				return
			}

			target := outputDir
			if target == "" {
				target = project.Name
			}
			target = filepath.Clean(target)

			ops, err := writer.Plan(project, target)
			if err != nil {
				exitErr(err)
			}
			resolver, err := writer.NewResolver(force, skip)
			if err != nil {
				exitErr(err)
			}
			execErr := writer.Execute(context.Background(), ops, writer.Options{
				DryRun:   dryRun,
				Resolver: resolver,
			})
			if execErr != nil {
				exitErr(execErr)
			}

			for _, w := range project.Metadata.Warnings {
				output.Warn(w)
			}
			for _, s := range project.Metadata.Suggestions {
				output.Info("Suggestion: " + s)
			}

			output.Success(fmt.Sprintf("Generated %s (%d files, ~%d min setup)",
				project.Name, len(ops), project.Metadata.EstimatedSetupMinutes))
			output.Info("Next steps:")
			output.Step(fmt.Sprintf("cd %s", target))
			output.Step("cp .env.example .env.local  # then fill in the values")
			output.Step("npm install")
			output.Step("npm run dev")
			output.Step("See SETUP.md for the full guide")
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&sel.Framework, "framework", "nextjs", "Framework template")
	flags.StringVar(&sel.Authentication, "auth", stack.None, "Authentication template")
	flags.StringVar(&sel.Database, "database", stack.None, "Database template")
	flags.StringVar(&sel.Payments, "payments", stack.None, "Payments template")
	flags.StringVar(&sel.Analytics, "analytics", stack.None, "Analytics template")
	flags.StringVar(&sel.Email, "email", stack.None, "Email template")
	flags.StringVar(&sel.Monitoring, "monitoring", stack.None, "Monitoring template")
	flags.StringVar(&sel.UI, "ui", stack.None, "UI component template")
	flags.StringVar(&sel.Hosting, "hosting", stack.None, "Hosting target for the deployment descriptor")
	flags.StringVar(&templatesDir, "templates", "", "Load templates from a directory instead of the embedded catalog")
	flags.StringVarP(&outputDir, "output", "o", "", "Target directory (defaults to the project name)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Run the wizard even when selection flags are given")
	flags.BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing")
	flags.BoolVar(&force, "force", false, "Overwrite existing files without asking")
	flags.BoolVar(&skip, "skip", false, "Keep existing files without asking")

	return cmd
}

// selectionFlagsUsed reports whether the user made any selection on the
// command line; if not, the wizard runs.
func selectionFlagsUsed(cmd *cobra.Command) bool {
	for _, name := range []string{"framework", "auth", "database", "payments", "analytics", "email", "monitoring", "ui", "hosting"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// fillSelectionDefaults normalizes empty flag values to the sentinel.
func fillSelectionDefaults(sel *stack.SelectionSet) {
	for _, field := range []*string{
		&sel.Authentication, &sel.Database, &sel.Payments, &sel.Analytics,
		&sel.Email, &sel.Monitoring, &sel.UI, &sel.Hosting,
	} {
		if *field == "" {
			*field = stack.None
		}
	}
}

// reportGenerateError prints generation failures with as much actionable
// detail as the error type carries.
func reportGenerateError(err error) {
	var compatErr *generate.CompatError
	if errors.As(err, &compatErr) {
		output.Error("Selections are incompatible:")
		for _, e := range compatErr.Result.Errors {
			output.Step(e)
		}
		for _, s := range compatErr.Result.Suggestions {
			output.Info("Suggestion: " + s)
		}
		exitErr(errors.New("fix the selections and try again"))
		return
	}
	exitErr(err)
}
