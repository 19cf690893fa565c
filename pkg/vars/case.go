package vars

import (
	"regexp"
	"strings"
	"unicode"
)

var wsUnderscoreRun = regexp.MustCompile(`[\s_]+`)

// KebabCase converts a name to kebab-case: a hyphen is inserted at every
// lowercase-then-uppercase boundary, whitespace and underscore runs become
// single hyphens, and the result is lowercased.
//
//	"My Awesome Project" -> "my-awesome-project"
//	"myApp"              -> "my-app"
func KebabCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	prev := rune(0)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteRune('-')
		}
		b.WriteRune(r)
		prev = r
	}
	out := wsUnderscoreRun.ReplaceAllString(b.String(), "-")
	return strings.ToLower(out)
}

// PascalCase splits on hyphens, underscores, and whitespace, capitalizes
// the first letter of each segment, and concatenates.
//
//	"my-awesome-project" -> "MyAwesomeProject"
//	"My Awesome Project" -> "MyAwesomeProject"
func PascalCase(s string) string {
	segments := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	var b strings.Builder
	b.Grow(len(s))
	for _, seg := range segments {
		runes := []rune(seg)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// CamelCase is PascalCase with the first character lowercased.
//
//	"my-awesome-project" -> "myAwesomeProject"
func CamelCase(s string) string {
	pascal := PascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
