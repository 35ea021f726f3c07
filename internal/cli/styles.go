package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles groups the terminal styles of one output stream
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Code    lipgloss.Style
	Detail  lipgloss.Style
}

// NewStyles creates the styles for a renderer. The renderer decides whether
// colors are emitted at all.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),

		Label: r.NewStyle().
			Foreground(colorMuted).
			Width(12),

		Value: r.NewStyle(),

		Success: r.NewStyle().
			Foreground(colorSecondary),

		Warning: r.NewStyle().
			Foreground(colorAccent),

		Error: r.NewStyle().
			Foreground(colorError).
			Bold(true),

		Code: r.NewStyle().
			Foreground(colorAccent),

		Detail: r.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(2),
	}
}
