// Package output provides styled terminal output for the CLI. All
// commands print through it so messages stay consistent.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output. The CLI calls this when
// the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a completed-operation message.
func Success(msg string) {
	fmt.Println(successStyle.Render("✨ " + msg))
}

// Error prints a failure that needs user attention.
func Error(msg string) {
	fmt.Println(errorStyle.Render("✖ " + msg))
}

// Warn prints a non-fatal degradation.
func Warn(msg string) {
	fmt.Println(warnStyle.Render("⚠ " + msg))
}

// Info prints a status update or explanation.
func Info(msg string) {
	fmt.Println(infoStyle.Render("→ " + msg))
}

// Step prints an indented actionable item, e.g. a next step.
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints debugging detail only when verbose mode is on.
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("· " + msg))
	}
}
