package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/LofiStudio/internal/models"
	"github.com/Rorical/LofiStudio/ui/styles"
)

func RenderError(message string, width int) string {
	return styles.ErrorStyle(ContentWidth(width)-2).Render("⚠️ " + message)
}

// RenderResult draws the prompt card with the weather and mood it was made for.
func RenderResult(prompt string, weather, mood models.Option, copied, focused bool, width int) string {
	inner := ContentWidth(width) - 4

	tags := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.TagStyle().Render(weather.Icon+" "+weather.Value),
		styles.TagStyle().Render(mood.Icon+" "+mood.Value),
	)

	copyLabel := "📋 Copy (c)"
	if copied {
		copyLabel = "✅ Copied!"
	}
	copyView := styles.CopyStyle(copied).Render(copyLabel)

	gap := inner - lipgloss.Width(tags) - lipgloss.Width(copyView)
	if gap < 1 {
		gap = 1
	}
	header := tags + strings.Repeat(" ", gap) + copyView

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		styles.DividerStyle().Render(strings.Repeat("─", inner)),
		lipgloss.NewStyle().Width(inner).Render(prompt),
	)

	return styles.ResultCardStyle(inner+2, focused).Render(body)
}
