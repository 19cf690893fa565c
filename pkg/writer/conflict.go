package writer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Resolution says what to do with a file that already exists at a
// planned path.
type Resolution int

const (
	Skip Resolution = iota
	Overwrite
	ShowDiff
	Cancel
)

// ConflictStrategy decides a Resolution for one existing file.
type ConflictStrategy interface {
	Resolve(path string, existing, generated []byte) (Resolution, error)
}

// Resolver wraps the strategy selected by CLI flags.
type Resolver struct {
	strategy ConflictStrategy
}

// NewResolver picks a strategy: --force overwrites everything, --skip
// keeps everything, neither means the interactive menu. The two flags
// are mutually exclusive.
func NewResolver(force, skip bool) (*Resolver, error) {
	if force && skip {
		return nil, fmt.Errorf("--force cannot be combined with --skip")
	}
	switch {
	case force:
		return &Resolver{strategy: forceStrategy{}}, nil
	case skip:
		return &Resolver{strategy: skipStrategy{}}, nil
	default:
		return &Resolver{strategy: &interactiveStrategy{}}, nil
	}
}

// Resolve applies the configured strategy.
func (r *Resolver) Resolve(path string, existing, generated []byte) (Resolution, error) {
	return r.strategy.Resolve(path, existing, generated)
}

type forceStrategy struct{}

func (forceStrategy) Resolve(string, []byte, []byte) (Resolution, error) {
	return Overwrite, nil
}

type skipStrategy struct{}

func (skipStrategy) Resolve(string, []byte, []byte) (Resolution, error) {
	return Skip, nil
}

// interactiveStrategy shows a menu; choosing "show diff" displays the
// diff and returns to the menu, so the user can review before deciding.
type interactiveStrategy struct{}

func (s *interactiveStrategy) Resolve(path string, existing, generated []byte) (Resolution, error) {
	for {
		model := newConflictMenu(path, len(existing))
		p := tea.NewProgram(model)
		final, err := p.Run()
		if err != nil {
			return Cancel, fmt.Errorf("showing conflict menu: %w", err)
		}

		menu := final.(conflictMenu)
		if menu.selected == nil {
			return Cancel, nil
		}
		if *menu.selected != ShowDiff {
			return *menu.selected, nil
		}

		if err := showDiff(path, existing, generated); err != nil {
			return Cancel, err
		}
	}
}

// showDiff prints small diffs inline and pages large ones in a viewport.
func showDiff(path string, existing, generated []byte) error {
	diff := Diff(path, existing, generated)
	if strings.Count(diff, "\n") <= 20 {
		fmt.Println(diff)
		return nil
	}

	p := tea.NewProgram(newDiffViewer(path, diff), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("showing diff: %w", err)
	}
	return nil
}

var (
	menuWarnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	menuTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	menuMutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type conflictMenu struct {
	path     string
	size     int
	choices  []string
	cursor   int
	selected *Resolution
}

func newConflictMenu(path string, size int) conflictMenu {
	return conflictMenu{
		path: path,
		size: size,
		choices: []string{
			"Show diff and decide",
			"Skip (keep the existing file)",
			"Overwrite (replace with the generated file)",
			"Cancel",
		},
	}
}

func (m conflictMenu) Init() tea.Cmd { return nil }

func (m conflictMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			res := [...]Resolution{ShowDiff, Skip, Overwrite, Cancel}[m.cursor]
			m.selected = &res
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m conflictMenu) View() string {
	var b strings.Builder
	b.WriteString(menuWarnStyle.Render("File already exists: ") + menuTitleStyle.Render(m.path) + "\n")
	b.WriteString(menuMutedStyle.Render(fmt.Sprintf("    %d bytes on disk", m.size)) + "\n\n")
	b.WriteString(menuMutedStyle.Render("    [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")
	for i, choice := range m.choices {
		if i == m.cursor {
			b.WriteString("    " + menuSelectedStyle.Render("> "+choice) + "\n")
		} else {
			b.WriteString("      " + choice + "\n")
		}
	}
	return b.String()
}

type diffViewer struct {
	path     string
	diff     string
	viewport viewport.Model
	ready    bool
}

func newDiffViewer(path, diff string) diffViewer {
	return diffViewer{path: path, diff: diff}
}

func (m diffViewer) Init() tea.Cmd { return nil }

func (m diffViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.viewport.ScrollUp(1)
		case "down", "j":
			m.viewport.ScrollDown(1)
		case "pgup", "b":
			m.viewport.PageUp()
		case "pgdown", "f", "space":
			m.viewport.PageDown()
		}
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.viewport.SetContent(m.diff)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
	}
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m diffViewer) View() string {
	if !m.ready {
		return "Loading diff..."
	}
	header := menuTitleStyle.Render("Diff: " + m.path)
	footer := menuMutedStyle.Render("[↑/↓] Scroll    [q] Back to menu")
	return header + "\n" + m.viewport.View() + "\n" + footer
}
