package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoodasCode/ignorethem-sub001/pkg/compat"
	"github.com/JoodasCode/ignorethem-sub001/pkg/output"
	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

// CheckCmd creates the 'check' command: validate a selection combination
// without generating anything.
func CheckCmd() *cobra.Command {
	var (
		sel          stack.SelectionSet
		templatesDir string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a technology combination is compatible",
		Run: func(cmd *cobra.Command, args []string) {
			reg, _, err := loadRegistry(templatesDir)
			if err != nil {
				exitErr(err)
			}
			fillSelectionDefaults(&sel)

			res := compat.Validate(sel, reg)
			for _, e := range res.Errors {
				output.Error(e)
			}
			for _, w := range res.Warnings {
				output.Warn(w)
			}
			for _, s := range res.Suggestions {
				output.Info("Suggestion: " + s)
			}

			if res.Valid() {
				output.Success("Selections are compatible")
				return
			}
			exitErr(fmt.Errorf("%d compatibility error(s)", len(res.Errors)))
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
	flags.StringVar(&templatesDir, "templates", "", "Load templates from a directory instead of the embedded catalog")

	return cmd
}
