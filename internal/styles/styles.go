// Package styles holds the lipgloss styles used for calc output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	ColorGreen = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorRed   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorGray  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorBlue  = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
)

var (
	BoldStyle   = lipgloss.NewStyle().Bold(true)
	ResultStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	ErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorBlue)
	DimStyle    = lipgloss.NewStyle().Foreground(ColorGray)
)

// RenderResult renders a computed value.
func RenderResult(s string) string {
	return ResultStyle.Render(s)
}

// RenderError renders an error line prefixed with "error:".
func RenderError(msg string) string {
	return ErrorStyle.Render("error:") + " " + msg
}

// RenderLabel renders a field label.
func RenderLabel(s string) string {
	return LabelStyle.Render(s)
}

// RenderDim renders secondary text.
func RenderDim(s string) string {
	return DimStyle.Render(s)
}

// Plain removes any ANSI styling from s.
func Plain(s string) string {
	return ansi.Strip(s)
}
