package generate

import (
	"fmt"
	"strings"

	"github.com/JoodasCode/ignorethem-sub001/pkg/compat"
)

// NameError reports an invalid project name.
type NameError struct {
	Name string
	Err  error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("invalid project name %q: %v", e.Name, e.Err)
}

func (e *NameError) Unwrap() error { return e.Err }

// CompatError reports a selection set that failed compatibility
// validation. Result carries the full breakdown for display.
type CompatError struct {
	Result *compat.Result
}

func (e *CompatError) Error() string {
	return "incompatible selections: " + strings.Join(e.Result.Errors, "; ")
}
