package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProjectName_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too long", strings.Repeat("a", 215)},
		{"illegal characters", "my/project"},
		{"path traversal attempt", "../escape"},
		{"reserved node_modules", "node_modules"},
		{"reserved mixed case", "NPM"},
		{"reserved with whitespace", "  test  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateProjectName(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestValidateProjectName_Warnings(t *testing.T) {
	warnings, err := ValidateProjectName(" my  project ")
	require.NoError(t, err)
	assert.Len(t, warnings, 2) // surrounding whitespace + repeated separators

	warnings, err = ValidateProjectName("my-project")
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestSanitizeProjectName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Awesome Project", "my-awesome-project"},
		{"  spaced  out  ", "spaced-out"},
		{"already-clean", "already-clean"},
		{"keeps_single_underscores", "keeps_single_underscores"},
		{"double__underscore", "double-underscore"},
		{"mixed -_ separators", "mixed-separators"},
		{"Ünïcode stripped", "ncode-stripped"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeProjectName(tt.input))
		})
	}
}

func TestSanitizeProjectName_Idempotent(t *testing.T) {
	inputs := []string{
		"My Awesome Project",
		"  lots   of   space  ",
		"--dashes--everywhere--",
		"UPPER_case MIX",
		strings.Repeat("long name ", 40),
		"",
		"###",
	}
	for _, input := range inputs {
		once := SanitizeProjectName(input)
		twice := SanitizeProjectName(once)
		assert.Equal(t, once, twice, "sanitize not idempotent for %q", input)
	}
}

func TestSanitizeProjectName_Truncates(t *testing.T) {
	long := strings.Repeat("a", 300)
	got := SanitizeProjectName(long)
	assert.Len(t, got, MaxProjectNameLength)
}

func TestValidateFilePath(t *testing.T) {
	valid := []string{
		"app/page.tsx",
		"lib/auth.ts",
		".env.example",
		"deep/nested/dir/file.md",
	}
	for _, p := range valid {
		assert.NoError(t, ValidateFilePath(p), p)
	}

	invalid := []string{
		"",
		"../../etc/passwd",
		"safe/../../escape",
		"/etc/passwd",
		"\\windows\\system32",
		"C:file.txt",
		"has\x00null",
		"win\\..\\escape",
	}
	for _, p := range invalid {
		assert.Error(t, ValidateFilePath(p), p)
	}
}

func TestSanitizeFileContent(t *testing.T) {
	got, err := SanitizeFileContent("line1\r\nline2\rline3\n")
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\nline3\n", got)
}

func TestSanitizeFileContent_SizeLimit(t *testing.T) {
	_, err := SanitizeFileContent(strings.Repeat("x", MaxFileContentBytes+1))
	assert.ErrorIs(t, err, ErrContentTooLarge)

	_, err = SanitizeFileContent(strings.Repeat("x", 1024))
	assert.NoError(t, err)
}
