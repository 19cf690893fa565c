package vars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKebabCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Awesome Project", "my-awesome-project"},
		{"myApp", "my-app"},
		{"my_app", "my-app"},
		{"already-kebab", "already-kebab"},
		{"Mixed_Case Name", "mixed-case-name"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KebabCase(tt.input), "KebabCase(%q)", tt.input)
	}
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Awesome Project", "MyAwesomeProject"},
		{"my-awesome-project", "MyAwesomeProject"},
		{"my_app", "MyApp"},
		{"single", "Single"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PascalCase(tt.input), "PascalCase(%q)", tt.input)
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Awesome Project", "myAwesomeProject"},
		{"my-awesome-project", "myAwesomeProject"},
		{"Single", "single"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CamelCase(tt.input), "CamelCase(%q)", tt.input)
	}
}
