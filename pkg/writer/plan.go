package writer

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/JoodasCode/ignorethem-sub001/pkg/generate"
)

// Plan turns a generated project into write operations rooted at
// targetDir. Paths were validated during merging; the escape check here
// guards the boundary between the pure engine and the filesystem anyway.
func Plan(project *generate.Project, targetDir string) ([]Operation, error) {
	root := filepath.Clean(targetDir)
	var ops []Operation

	add := func(rel string, content []byte, mode fs.FileMode) error {
		full := filepath.Join(root, filepath.FromSlash(rel))
		back, err := filepath.Rel(root, full)
		if err != nil || back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
			return fmt.Errorf("file %q escapes the project root", rel)
		}
		ops = append(ops, &WriteFileOp{Path: full, Content: content, Mode: mode})
		return nil
	}

	for _, f := range project.Files {
		mode := fs.FileMode(0644)
		if f.Executable {
			mode = 0755
		}
		if err := add(f.Path, []byte(f.Content), mode); err != nil {
			return nil, err
		}
	}

	if project.Manifest != nil {
		if !hasPath(project, "package.json") {
			rendered, err := project.Manifest.Render()
			if err != nil {
				return nil, fmt.Errorf("rendering package.json: %w", err)
			}
			if err := add("package.json", rendered, 0644); err != nil {
				return nil, err
			}
		}
	}
	if project.EnvTemplate != "" && !hasPath(project, ".env.example") {
		if err := add(".env.example", []byte(project.EnvTemplate), 0644); err != nil {
			return nil, err
		}
	}
	if project.SetupGuide != "" && !hasPath(project, "SETUP.md") {
		if err := add("SETUP.md", []byte(project.SetupGuide), 0644); err != nil {
			return nil, err
		}
	}

	return ops, nil
}

func hasPath(project *generate.Project, path string) bool {
	for _, f := range project.Files {
		if f.Path == path {
			return true
		}
	}
	return false
}
