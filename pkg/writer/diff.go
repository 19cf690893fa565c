package writer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	contextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// maxDiffLines bounds the LCS table; beyond it we summarize instead.
const maxDiffLines = 2000

// Diff renders a line-based diff between the file on disk and the
// generated content, colored for terminal display.
func Diff(path string, existing, incoming []byte) string {
	oldLines := strings.Split(strings.TrimRight(string(existing), "\n"), "\n")
	newLines := strings.Split(strings.TrimRight(string(incoming), "\n"), "\n")

	if len(oldLines) > maxDiffLines || len(newLines) > maxDiffLines {
		return fmt.Sprintf("%s: files differ (%d vs %d lines, too large to diff)", path, len(oldLines), len(newLines))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s (existing)\n+++ %s (generated)\n", path, path)
	for _, edit := range diffLines(oldLines, newLines) {
		switch edit.kind {
		case editRemove:
			b.WriteString(removedStyle.Render("- "+edit.line) + "\n")
		case editAdd:
			b.WriteString(addedStyle.Render("+ "+edit.line) + "\n")
		default:
			b.WriteString(contextStyle.Render("  "+edit.line) + "\n")
		}
	}
	return b.String()
}

const (
	editKeep = iota
	editRemove
	editAdd
)

type edit struct {
	kind int
	line string
}

// diffLines computes an edit script via a longest-common-subsequence
// table. Quadratic, which is fine at maxDiffLines.
func diffLines(oldLines, newLines []string) []edit {
	n, m := len(oldLines), len(newLines)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var edits []edit
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case oldLines[i] == newLines[j]:
			edits = append(edits, edit{editKeep, oldLines[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			edits = append(edits, edit{editRemove, oldLines[i]})
			i++
		default:
			edits = append(edits, edit{editAdd, newLines[j]})
			j++
		}
	}
	for ; i < n; i++ {
		edits = append(edits, edit{editRemove, oldLines[i]})
	}
	for ; j < m; j++ {
		edits = append(edits, edit{editAdd, newLines[j]})
	}
	return edits
}
