package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/QUAKO-CLOUDY/SeekEatz/pkg/cleanup"
)

// Common styles used across commands
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// reportStyles returns the styles for the cleanup report, unstyled when
// stdout is not a terminal or --no-color was passed.
func reportStyles() cleanup.Styles {
	if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		return cleanup.Styles{}
	}
	return cleanup.Styles{
		Header:  headerStyle,
		Removed: removedStyle,
		Success: successStyle,
		Warning: warningStyle,
	}
}
