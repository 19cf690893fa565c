package sanitize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaxProjectNameLength matches npm's package-name ceiling.
const MaxProjectNameLength = 214

// MaxFileContentBytes is the per-file content ceiling (10 MiB).
const MaxFileContentBytes = 10 << 20

// ErrContentTooLarge is returned by SanitizeFileContent for oversized files.
var ErrContentTooLarge = errors.New("file content exceeds 10 MiB limit")

// reservedNames are project names that collide with tooling conventions.
var reservedNames = []string{"node_modules", "package", "npm", "test", "src", "lib", "bin"}

var (
	validNameChars = regexp.MustCompile(`^[A-Za-z0-9\-_ ]+$`)
	invalidChars   = regexp.MustCompile(`[^A-Za-z0-9\-_ ]`)
	separatorRun   = regexp.MustCompile(`[\s_-]{2,}`)
	whitespace     = regexp.MustCompile(`\s`)
	repeatedSeps   = regexp.MustCompile(`[-_]{2,}|\s{2,}`)
	drivePrefix    = regexp.MustCompile(`^[A-Za-z]:`)
)

// ValidateProjectName checks a raw project name. Errors mean the name must
// be rejected outright; warnings flag cosmetic issues SanitizeProjectName
// will repair.
func ValidateProjectName(name string) ([]string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, errors.New("project name cannot be empty")
	}
	if len(name) > MaxProjectNameLength {
		return nil, fmt.Errorf("project name exceeds %d characters", MaxProjectNameLength)
	}
	if !validNameChars.MatchString(name) {
		return nil, errors.New("project name may only contain letters, digits, spaces, hyphens, and underscores")
	}
	for _, reserved := range reservedNames {
		if strings.EqualFold(trimmed, reserved) {
			return nil, fmt.Errorf("project name %q is reserved", reserved)
		}
	}

	var warnings []string
	if trimmed != name {
		warnings = append(warnings, "project name has leading or trailing whitespace; it will be trimmed")
	}
	if repeatedSeps.MatchString(trimmed) {
		warnings = append(warnings, "project name has repeated separators; they will be collapsed")
	}
	return warnings, nil
}

// SanitizeProjectName normalizes a name for use in paths and manifests.
// It is total (never fails) and idempotent: trim, strip disallowed
// characters, collapse whitespace and separator runs to single hyphens,
// lowercase, truncate.
func SanitizeProjectName(name string) string {
	s := strings.TrimSpace(name)
	s = invalidChars.ReplaceAllString(s, "")
	s = strings.ToLower(s)
	s = separatorRun.ReplaceAllString(s, "-")
	s = whitespace.ReplaceAllString(s, "-")
	s = strings.TrimSpace(s)
	if len(s) > MaxProjectNameLength {
		s = s[:MaxProjectNameLength]
	}
	return s
}

// ValidateFilePath rejects template file paths that could escape the
// project root: parent-directory segments, absolute prefixes, drive
// letters, and embedded NUL bytes. The merge engine drops (never merges)
// any file failing this check.
func ValidateFilePath(path string) error {
	if path == "" {
		return errors.New("file path is empty")
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("file path %q contains a null byte", path)
	}
	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, "\\") {
		return fmt.Errorf("file path %q is absolute", path)
	}
	if drivePrefix.MatchString(path) {
		return fmt.Errorf("file path %q has a drive-letter prefix", path)
	}
	normalized := strings.ReplaceAll(path, "\\", "/")
	for _, segment := range strings.Split(normalized, "/") {
		if segment == ".." {
			return fmt.Errorf("file path %q contains a parent-directory segment", path)
		}
	}
	return nil
}

// SanitizeFileContent normalizes line endings to LF and enforces the
// per-file size limit.
func SanitizeFileContent(content string) (string, error) {
	if len(content) > MaxFileContentBytes {
		return "", fmt.Errorf("%w (%d bytes)", ErrContentTooLarge, len(content))
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return content, nil
}
