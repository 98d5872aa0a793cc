package components

import (
	"strings"

	"github.com/Rorical/LofiStudio/ui/styles"
)

func RenderHeader() string {
	var b strings.Builder

	b.WriteString(styles.BadgeStyle().Render("AI Music Generator"))
	b.WriteString("\n")
	b.WriteString(styles.TitleStyle().Render("Lo-Fi " + styles.AccentStyle().Render("Prompt") + " Studio"))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle().Render("Select your weather & mood, get a studio-ready Lo-Fi prompt instantly"))
	b.WriteString("\n")

	return b.String()
}
