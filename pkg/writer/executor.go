package writer

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Options configures execution.
type Options struct {
	DryRun   bool
	Resolver *Resolver // nil means overwrite (fresh target directories)
	Writer   io.Writer // defaults to os.Stdout
}

// Execute validates all operations, then runs them. Collisions with
// existing files go through the resolver; a Cancel resolution aborts the
// whole run before any further writes.
func Execute(ctx context.Context, ops []Operation, opts Options) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	for _, op := range ops {
		if err := op.Validate(ctx); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	for _, op := range ops {
		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "[dry run] %s\n", op.Description())
			continue
		}

		if write, ok := op.(*WriteFileOp); ok && opts.Resolver != nil {
			existing, err := os.ReadFile(write.Path)
			if err == nil {
				resolution, err := opts.Resolver.Resolve(write.Path, existing, write.Content)
				if err != nil {
					return err
				}
				switch resolution {
				case Skip:
					fmt.Fprintf(opts.Writer, "skipped %s\n", write.Path)
					continue
				case Cancel:
					return fmt.Errorf("cancelled at %s", write.Path)
				}
			}
		}

		if err := op.Execute(ctx); err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
		fmt.Fprintf(opts.Writer, "%s\n", op.Description())
	}

	return nil
}
