// Package wizard interviews the user about their stack when the new
// command runs without selection flags.
package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/JoodasCode/ignorethem-sub001/pkg/registry"
	"github.com/JoodasCode/ignorethem-sub001/pkg/sanitize"
	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

// ErrCancelled is returned when the user aborts the wizard.
var ErrCancelled = errors.New("wizard cancelled")

// Answers is the completed interview.
type Answers struct {
	ProjectName string
	Selections  stack.SelectionSet
}

// selectableCategories are asked in order after the framework question.
var selectableCategories = []struct {
	category stack.Category
	title    string
	target   func(*stack.SelectionSet) *string
}{
	{stack.CategoryAuthentication, "Authentication", func(s *stack.SelectionSet) *string { return &s.Authentication }},
	{stack.CategoryDatabase, "Database", func(s *stack.SelectionSet) *string { return &s.Database }},
	{stack.CategoryPayments, "Payments", func(s *stack.SelectionSet) *string { return &s.Payments }},
	{stack.CategoryAnalytics, "Analytics", func(s *stack.SelectionSet) *string { return &s.Analytics }},
	{stack.CategoryEmail, "Email", func(s *stack.SelectionSet) *string { return &s.Email }},
	{stack.CategoryMonitoring, "Monitoring", func(s *stack.SelectionSet) *string { return &s.Monitoring }},
	{stack.CategoryUI, "UI components", func(s *stack.SelectionSet) *string { return &s.UI }},
}

// Run asks one question per category, skipping categories the registry
// has no templates for. Each question runs as its own form so a long
// catalog never fights the terminal height.
func Run(reg *registry.Registry, defaultName string) (*Answers, error) {
	answers := &Answers{Selections: stack.DefaultSelections(stack.None)}
	answers.ProjectName = defaultName

	nameField := huh.NewInput().
		Title("Project name").
		Description("Used for the directory, package.json, and generated identifiers.").
		Validate(func(s string) error {
			_, err := sanitize.ValidateProjectName(s)
			return err
		}).
		Value(&answers.ProjectName)
	if err := runField(nameField); err != nil {
		return nil, err
	}

	frameworks := reg.ByCategory(stack.CategoryFramework)
	if len(frameworks) > 0 {
		opts := make([]huh.Option[string], 0, len(frameworks))
		for _, t := range frameworks {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s — %s", t.Name, t.Description), t.ID))
		}
		field := huh.NewSelect[string]().
			Title("Framework").
			Options(opts...).
			Value(&answers.Selections.Framework)
		if err := runField(field); err != nil {
			return nil, err
		}
	}

	for _, q := range selectableCategories {
		templates := reg.ByCategory(q.category)
		if len(templates) == 0 {
			continue
		}
		opts := make([]huh.Option[string], 0, len(templates)+1)
		opts = append(opts, huh.NewOption("None", stack.None))
		for _, t := range templates {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s — %s", t.Name, t.Description), t.ID))
		}
		field := huh.NewSelect[string]().
			Title(q.title).
			Options(opts...).
			Value(q.target(&answers.Selections))
		if err := runField(field); err != nil {
			return nil, err
		}
	}

	hostingOpts := []huh.Option[string]{
		huh.NewOption("None (decide later)", stack.None),
		huh.NewOption("Vercel", "vercel"),
		huh.NewOption("Railway", "railway"),
		huh.NewOption("Render", "render"),
		huh.NewOption("Docker", "docker"),
	}
	hostingField := huh.NewSelect[string]().
		Title("Hosting").
		Description("Adds a deployment descriptor for the chosen platform.").
		Options(hostingOpts...).
		Value(&answers.Selections.Hosting)
	if err := runField(hostingField); err != nil {
		return nil, err
	}

	return answers, nil
}

func runField(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}
