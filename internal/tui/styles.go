// Package tui implements the interactive subpackage picker.
package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the picker.
var Colors = struct {
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
}{
	Primary:       lipgloss.Color("#6C5CE7"), // Purple
	Muted:         lipgloss.Color("#636E72"), // Gray
	Error:         lipgloss.Color("#D63031"), // Red
	Success:       lipgloss.Color("#00B894"), // Green
	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (cursor row)
}

// Styles holds the lipgloss styles used by the picker.
type Styles struct {
	Header   lipgloss.Style
	Row      lipgloss.Style
	RowFocus lipgloss.Style
	Checked  lipgloss.Style
	Path     lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the default picker styles.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Row:      lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		RowFocus: lipgloss.NewStyle().Foreground(Colors.TitleSelected).Bold(true),
		Checked:  lipgloss.NewStyle().Foreground(Colors.Success),
		Path:     lipgloss.NewStyle().Foreground(Colors.Muted),
		Help:     lipgloss.NewStyle().Foreground(Colors.Muted),
		Error:    lipgloss.NewStyle().Foreground(Colors.Error),
	}
}
