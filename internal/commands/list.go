package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoodasCode/ignorethem-sub001/pkg/output"
	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

// ListCmd creates the 'list' command: show available templates.
func ListCmd() *cobra.Command {
	var (
		templatesDir string
		category     string
		search       string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available technology templates",
		Run: func(cmd *cobra.Command, args []string) {
			reg, _, err := loadRegistry(templatesDir)
			if err != nil {
				exitErr(err)
			}

			if search != "" {
				matches := reg.Search(search)
				if len(matches) == 0 {
					output.Info(fmt.Sprintf("No templates match %q", search))
					return
				}
				for _, t := range matches {
					output.Step(fmt.Sprintf("%-12s %-16s %s", t.ID, t.Category, t.Description))
				}
				return
			}

			for _, c := range stack.Categories {
				if category != "" && string(c) != category {
					continue
				}
				templates := reg.ByCategory(c)
				if len(templates) == 0 {
					continue
				}
				output.Info(string(c))
				for _, t := range templates {
					output.Step(fmt.Sprintf("%-12s %s (v%s)", t.ID, t.Description, t.Version))
				}
			}
		},
	}

	cmd.Flags().StringVar(&templatesDir, "templates", "", "Load templates from a directory instead of the embedded catalog")
	cmd.Flags().StringVar(&category, "category", "", "Only show one category")
	cmd.Flags().StringVar(&search, "search", "", "Free-text search over name and description")

	return cmd
}
