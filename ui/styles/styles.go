package styles

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("213")
	violet  = lipgloss.Color("141")
	muted   = lipgloss.Color("245")
	dim     = lipgloss.Color("240")
	danger  = lipgloss.Color("203")
	success = lipgloss.Color("78")
)

func BadgeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(violet).
		Bold(true).
		Padding(0, 1)
}

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		MarginTop(1)
}

func AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)
}

func SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted)
}

func SectionTitleStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).MarginTop(1)
	if focused {
		return s.Foreground(accent)
	}
	return s
}

func SectionNumberStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(violet).
		MarginRight(1)
}

func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim).
		Padding(0, 1).
		Width(16)
}

func SelectedCardStyle() lipgloss.Style {
	return CardStyle().
		BorderForeground(violet).
		Foreground(lipgloss.Color("230")).
		Bold(true)
}

// CursorCardStyle marks the card under the cursor in the focused grid.
func CursorCardStyle(selected bool) lipgloss.Style {
	if selected {
		return SelectedCardStyle().BorderForeground(accent)
	}
	return CardStyle().BorderForeground(accent)
}

func ButtonStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("99")).
		Bold(true).
		Padding(0, 3).
		MarginTop(1)
	if focused {
		return s.Background(accent)
	}
	return s
}

func DisabledButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(dim).
		Background(lipgloss.Color("236")).
		Padding(0, 3).
		MarginTop(1)
}

func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Italic(true)
}

func ErrorStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(danger).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(danger).
		Padding(0, 1).
		MarginTop(1).
		Width(width)
}

func ResultCardStyle(width int, focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(violet).
		Padding(0, 1).
		MarginTop(1).
		Width(width)
	if focused {
		return s.BorderForeground(accent)
	}
	return s
}

func TagStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("60")).
		Padding(0, 1).
		MarginRight(1)
}

func CopyStyle(copied bool) lipgloss.Style {
	if copied {
		return lipgloss.NewStyle().Foreground(success).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(muted)
}

func DividerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(dim)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func FooterStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(dim).
		MarginTop(1)
}
