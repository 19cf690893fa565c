package registry

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/JoodasCode/ignorethem-sub001/pkg/sanitize"
	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
	"github.com/JoodasCode/ignorethem-sub001/templates"
)

// envKeyPattern is the required syntax for environment-variable keys.
var envKeyPattern = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)

// manifest is the on-disk shape of a template.yml. File payloads may be
// inline (content) or live next to the manifest (source, relative to the
// template directory).
type manifest struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name"`
	Description  string         `yaml:"description"`
	Category     stack.Category `yaml:"category"`
	Version      string         `yaml:"version"`
	Dependencies []string       `yaml:"dependencies"`
	Conflicts    []string       `yaml:"conflicts"`
	Files        []manifestFile `yaml:"files"`
	EnvVars      []stack.EnvVar `yaml:"env_vars"`
	SetupSteps   []stack.SetupStep `yaml:"setup_steps"`
	PackageDeps    map[string]string `yaml:"package_deps"`
	PackageDevDeps map[string]string `yaml:"package_dev_deps"`
	Scripts        map[string]string `yaml:"scripts"`
}

type manifestFile struct {
	Path       string `yaml:"path"`
	Content    string `yaml:"content,omitempty"`
	Source     string `yaml:"source,omitempty"`
	Overwrite  bool   `yaml:"overwrite,omitempty"`
	Executable bool   `yaml:"executable,omitempty"`
}

// Default loads the embedded template catalog.
func Default() (*Registry, error) {
	return Load(templates.Catalog())
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir string) (*Registry, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("template catalog %s: %w", dir, err)
	}
	return Load(os.DirFS(dir))
}

// Load builds a registry from a catalog filesystem: one directory per
// template, each holding a template.yml and an optional files/ payload
// tree. The load fails only if the catalog root is unreadable; a
// malformed template is skipped with a warning.
func Load(fsys fs.FS) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading template catalog: %w", err)
	}

	reg := &Registry{templates: map[string]*stack.Template{}}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		tpl, err := loadTemplate(fsys, name)
		if err != nil {
			reg.warnings = append(reg.warnings, fmt.Sprintf("skipping template %q: %v", name, err))
			continue
		}
		if _, dup := reg.templates[tpl.ID]; dup {
			reg.warnings = append(reg.warnings, fmt.Sprintf("skipping template %q: duplicate id %q", name, tpl.ID))
			continue
		}
		reg.templates[tpl.ID] = tpl
		reg.order = append(reg.order, tpl.ID)
	}

	return reg, nil
}

// loadTemplate parses and validates one template directory.
func loadTemplate(fsys fs.FS, dir string) (*stack.Template, error) {
	raw, err := fs.ReadFile(fsys, path.Join(dir, "template.yml"))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if err := validateManifest(&m); err != nil {
		return nil, err
	}

	files := make([]stack.FileEntry, 0, len(m.Files))
	for _, f := range m.Files {
		if err := sanitize.ValidateFilePath(f.Path); err != nil {
			return nil, err
		}
		content := f.Content
		if f.Source != "" {
			data, err := fs.ReadFile(fsys, path.Join(dir, f.Source))
			if err != nil {
				return nil, fmt.Errorf("reading payload %q: %w", f.Source, err)
			}
			content = string(data)
		}
		content, err := sanitize.SanitizeFileContent(content)
		if err != nil {
			return nil, fmt.Errorf("file %q: %w", f.Path, err)
		}
		files = append(files, stack.FileEntry{
			Path:       f.Path,
			Content:    content,
			Overwrite:  f.Overwrite,
			Executable: f.Executable,
		})
	}

	return &stack.Template{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		Category:       m.Category,
		Version:        m.Version,
		Dependencies:   m.Dependencies,
		Conflicts:      m.Conflicts,
		Files:          files,
		EnvVars:        m.EnvVars,
		SetupSteps:     m.SetupSteps,
		PackageDeps:    m.PackageDeps,
		PackageDevDeps: m.PackageDevDeps,
		Scripts:        m.Scripts,
	}, nil
}

func validateManifest(m *manifest) error {
	if m.ID == "" {
		return fmt.Errorf("manifest has no id")
	}
	if m.Name == "" {
		return fmt.Errorf("manifest has no name")
	}
	if m.Version == "" {
		return fmt.Errorf("manifest has no version")
	}
	if !m.Category.Valid() {
		return fmt.Errorf("unknown category %q", m.Category)
	}
	for _, v := range m.EnvVars {
		if !envKeyPattern.MatchString(v.Key) {
			return fmt.Errorf("env var key %q does not match %s", v.Key, envKeyPattern)
		}
	}
	return nil
}
