//go:build property

package sanitize

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSanitizeProjectNameProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("sanitize is idempotent", prop.ForAll(
		func(name string) bool {
			once := SanitizeProjectName(name)
			return SanitizeProjectName(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("output never exceeds the length cap", prop.ForAll(
		func(name string) bool {
			return len(SanitizeProjectName(name)) <= MaxProjectNameLength
		},
		gen.AnyString(),
	))

	properties.Property("output contains only lowercase name characters", prop.ForAll(
		func(name string) bool {
			for _, r := range SanitizeProjectName(name) {
				switch {
				case r >= 'a' && r <= 'z':
				case r >= '0' && r <= '9':
				case r == '-' || r == '_':
				default:
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("output has no separator runs", prop.ForAll(
		func(name string) bool {
			out := SanitizeProjectName(name)
			return !strings.Contains(out, "--") &&
				!strings.Contains(out, "__") &&
				!strings.Contains(out, "-_") &&
				!strings.Contains(out, "_-")
		},
		gen.AnyString(),
	))

	properties.Property("already-valid names pass validation after sanitizing", prop.ForAll(
		func(name string) bool {
			out := SanitizeProjectName(name)
			if out == "" {
				return true
			}
			_, err := ValidateProjectName(out)
			// Reserved names stay reserved; everything else must validate.
			for _, reserved := range []string{"node_modules", "package", "npm", "test", "src", "lib", "bin"} {
				if out == reserved {
					return err != nil
				}
			}
			return err == nil
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
