package components

import (
	"strings"

	"github.com/Rorical/LofiStudio/ui/styles"
)

func RenderGenerate(canGenerate, loading bool, spinnerView string, focused bool, hint string) string {
	var b strings.Builder

	switch {
	case loading:
		b.WriteString(styles.DisabledButtonStyle().Render(spinnerView + " Composing your vibe…"))
	case canGenerate:
		b.WriteString(styles.ButtonStyle(focused).Render("🎵 Generate Lo-Fi Prompt"))
	default:
		b.WriteString(styles.DisabledButtonStyle().Render("🎵 Generate Lo-Fi Prompt"))
	}
	b.WriteString("\n")

	if hint != "" {
		b.WriteString(styles.HintStyle().Render(hint))
		b.WriteString("\n")
	}

	return b.String()
}
