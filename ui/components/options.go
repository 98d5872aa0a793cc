package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/LofiStudio/internal/models"
	"github.com/Rorical/LofiStudio/ui/styles"
)

// RenderOptionGrid draws a numbered section of option cards, columns wide.
// The cursor is only drawn while the section has focus.
func RenderOptionGrid(num, title string, options []models.Option, selected string, cursor int, focused bool, columns int) string {
	heading := styles.SectionTitleStyle(focused).Render(
		styles.SectionNumberStyle().Render(num) + title,
	)

	var rows []string
	var row []string
	for i, opt := range options {
		isSelected := opt.Value == selected
		style := styles.CardStyle()
		switch {
		case focused && i == cursor:
			style = styles.CursorCardStyle(isSelected)
		case isSelected:
			style = styles.SelectedCardStyle()
		}
		row = append(row, style.Render(fmt.Sprintf("%s %s", opt.Icon, opt.Label)))

		if len(row) == columns || i == len(options)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, heading, lipgloss.JoinVertical(lipgloss.Left, rows...))
}
