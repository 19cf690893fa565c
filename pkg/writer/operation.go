package writer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation is one planned filesystem action. Validate checks that the
// operation can succeed (creating parent directories as a side effect);
// Execute performs it; Description is for terminal output.
type Operation interface {
	Validate(ctx context.Context) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp creates one file of the generated project.
type WriteFileOp struct {
	Path    string
	Content []byte
	Mode    fs.FileMode
}

func (op *WriteFileOp) Validate(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}
	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(op.Path), 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}
