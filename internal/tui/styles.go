package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/i474232898/weather-panel/internal/panel"
	"github.com/i474232898/weather-panel/internal/weather"
)

// palette is the color scheme for one display mode.
type palette struct {
	Background lipgloss.Color
	Card       lipgloss.Color
	Border     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
}

var (
	dayPalette = palette{
		Background: lipgloss.Color("#f5f0e8"),
		Card:       lipgloss.Color("#ffffff"),
		Border:     lipgloss.Color("#e0d8c8"),
		Text:       lipgloss.Color("#2a2520"),
		Muted:      lipgloss.Color("#706050"),
		Accent:     lipgloss.Color("#d07020"),
	}
	nightPalette = palette{
		Background: lipgloss.Color("#0f0f1a"),
		Card:       lipgloss.Color("#1a1a2e"),
		Border:     lipgloss.Color("#2a2a4e"),
		Text:       lipgloss.Color("#eeeeee"),
		Muted:      lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#4fc3f7"),
	}
)

type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	button   lipgloss.Style
	input    lipgloss.Style
	temp     lipgloss.Style
	muted    lipgloss.Style
	card     lipgloss.Style
	cardText lipgloss.Style
	help     lipgloss.Style
}

func stylesFor(mode panel.Mode) styles {
	pal := dayPalette
	if mode == panel.Night {
		pal = nightPalette
	}

	return styles{
		app: lipgloss.NewStyle().
			Background(pal.Background).
			Foreground(pal.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(pal.Border).
			Padding(1, 3),
		title: lipgloss.NewStyle().
			Foreground(pal.Accent).
			Bold(true),
		button: lipgloss.NewStyle().
			Foreground(pal.Background).
			Background(pal.Accent).
			Padding(0, 1),
		input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(pal.Border).
			Padding(0, 1),
		temp: lipgloss.NewStyle().
			Foreground(pal.Accent).
			Bold(true),
		muted: lipgloss.NewStyle().
			Foreground(pal.Muted),
		card: lipgloss.NewStyle().
			Background(pal.Card).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(pal.Border).
			Padding(0, 1).
			Align(lipgloss.Center),
		cardText: lipgloss.NewStyle().
			Foreground(pal.Text).
			Bold(true),
		help: lipgloss.NewStyle().
			Foreground(pal.Muted).
			Italic(true),
	}
}

// conditionGlyph stands in for the condition icon, which a terminal cannot show.
func conditionGlyph(c weather.Condition, mode panel.Mode) string {
	switch c {
	case weather.ConditionClear:
		if mode == panel.Night {
			return "🌙"
		}
		return "☀️"
	case weather.ConditionCloudy:
		return "⛅"
	case weather.ConditionRain:
		return "🌧"
	case weather.ConditionSnow:
		return "❄️"
	case weather.ConditionStorm:
		return "⛈"
	case weather.ConditionMist:
		return "🌫"
	default:
		return "🌡"
	}
}
