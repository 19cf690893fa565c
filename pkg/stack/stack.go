package stack

import "fmt"

// None is the sentinel value for categories the user opted out of.
const None = "none"

// Category classifies a template by the concern it addresses.
type Category string

const (
	CategoryFramework      Category = "framework"
	CategoryAuthentication Category = "authentication"
	CategoryDatabase       Category = "database"
	CategoryPayments       Category = "payments"
	CategoryAnalytics      Category = "analytics"
	CategoryEmail          Category = "email"
	CategoryMonitoring     Category = "monitoring"
	CategoryUI             Category = "ui"
	CategoryBase           Category = "base"
	CategoryOther          Category = "other"
)

// Categories lists every recognized category in its canonical order.
// The order is load-bearing: selection-to-template resolution and
// env-var grouping both iterate it.
var Categories = []Category{
	CategoryFramework,
	CategoryAuthentication,
	CategoryDatabase,
	CategoryPayments,
	CategoryAnalytics,
	CategoryEmail,
	CategoryMonitoring,
	CategoryUI,
	CategoryBase,
	CategoryOther,
}

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// StepCategory classifies a setup instruction. Setup guides group steps
// by this, in the order installation, configuration, deployment, testing.
type StepCategory string

const (
	StepInstallation  StepCategory = "installation"
	StepConfiguration StepCategory = "configuration"
	StepDeployment    StepCategory = "deployment"
	StepTesting       StepCategory = "testing"
)

// StepCategories lists setup-step categories in guide order.
var StepCategories = []StepCategory{
	StepInstallation,
	StepConfiguration,
	StepDeployment,
	StepTesting,
}

// Template is an immutable technology bundle. Registries construct
// templates at load time; the merge engine only ever copies them.
type Template struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Category    Category `yaml:"category"`
	Version     string   `yaml:"version"`

	// Dependencies are template IDs that must be merged before this one.
	Dependencies []string `yaml:"dependencies,omitempty"`
	// Conflicts are template IDs this template cannot coexist with.
	Conflicts []string `yaml:"conflicts,omitempty"`

	Files      []FileEntry `yaml:"files,omitempty"`
	EnvVars    []EnvVar    `yaml:"env_vars,omitempty"`
	SetupSteps []SetupStep `yaml:"setup_steps,omitempty"`

	// Package-manifest fragments, shallow-merged last-writer-wins.
	PackageDeps    map[string]string `yaml:"package_deps,omitempty"`
	PackageDevDeps map[string]string `yaml:"package_dev_deps,omitempty"`
	Scripts        map[string]string `yaml:"scripts,omitempty"`
}

// FileEntry is one file a template contributes. Path is always relative
// to the generated project root and must never escape it.
type FileEntry struct {
	Path       string `yaml:"path"`
	Content    string `yaml:"content"`
	Overwrite  bool   `yaml:"overwrite,omitempty"`
	Executable bool   `yaml:"executable,omitempty"`
}

// EnvVar declares an environment variable the generated project needs.
type EnvVar struct {
	Key         string `yaml:"key"`
	Description string `yaml:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
	Default     string `yaml:"default,omitempty"`
}

// SetupStep is one numbered instruction in a template's setup sequence.
type SetupStep struct {
	Step        int          `yaml:"step"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description,omitempty"`
	Category    StepCategory `yaml:"category,omitempty"`
	Commands    []string     `yaml:"commands,omitempty"`
}

// Clone returns a deep copy of t. The merge engine folds into a clone so
// input templates stay untouched.
func (t *Template) Clone() *Template {
	out := &Template{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Version:     t.Version,
	}
	out.Dependencies = append([]string(nil), t.Dependencies...)
	out.Conflicts = append([]string(nil), t.Conflicts...)
	out.Files = append([]FileEntry(nil), t.Files...)
	out.EnvVars = append([]EnvVar(nil), t.EnvVars...)
	out.SetupSteps = make([]SetupStep, len(t.SetupSteps))
	for i, s := range t.SetupSteps {
		s.Commands = append([]string(nil), s.Commands...)
		out.SetupSteps[i] = s
	}
	out.PackageDeps = cloneStringMap(t.PackageDeps)
	out.PackageDevDeps = cloneStringMap(t.PackageDevDeps)
	out.Scripts = cloneStringMap(t.Scripts)
	return out
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// String implements fmt.Stringer for diagnostics.
func (t *Template) String() string {
	return fmt.Sprintf("%s@%s (%s)", t.ID, t.Version, t.Category)
}
