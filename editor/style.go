package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the form rendering.
type Style struct {
	Title lipgloss.Style

	TypeItem       lipgloss.Style
	TypeItemActive lipgloss.Style
	Link           lipgloss.Style

	Label       lipgloss.Style
	LabelActive lipgloss.Style
	Value       lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	Preview lipgloss.Style
	Italic  lipgloss.Style

	Status lipgloss.Style
	Error  lipgloss.Style
}

func DefaultStyle() Style {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Style{
		Title: lipgloss.NewStyle().Bold(true),

		TypeItem:       muted,
		TypeItemActive: accent.Bold(true),
		Link:           lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),

		Label:       muted,
		LabelActive: accent,
		Value:       lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Italic(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),

		Preview: lipgloss.NewStyle(),
		Italic:  lipgloss.NewStyle().Italic(true),

		Status: muted,
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
