package components

import (
	"github.com/Rorical/LofiStudio/ui/styles"
)

const defaultWidth = 80

// ContentWidth is the usable width before the first WindowSizeMsg arrives
// and a cap afterwards so cards do not stretch across wide terminals.
func ContentWidth(width int) int {
	if width <= 0 {
		return defaultWidth
	}
	if width > 100 {
		return 100
	}
	return width
}

func RenderStatus(status string, width int) string {
	return styles.StatusStyle(ContentWidth(width)).Render(status)
}

func RenderFooter() string {
	return styles.FooterStyle().Render("Powered by Groq & Llama 3.3 · Lo-Fi Prompt Studio")
}
