package panel

import (
	"strconv"

	"github.com/i474232898/weather-panel/internal/weather"
)

// LoadingText is shown whenever there is no snapshot, whether nothing was
// fetched yet, a fetch is running or the last fetch failed.
const LoadingText = "Loading weather data..."

// View is everything a front-end needs to draw the panel.
type View struct {
	Mode        string       `json:"mode"`
	Class       string       `json:"class"`
	ToggleLabel string       `json:"toggleLabel"`
	CityInput   string       `json:"cityInput"`
	CurrentCity string       `json:"currentCity"`
	Status      string       `json:"status"`
	Placeholder string       `json:"placeholder,omitempty"`
	Weather     *WeatherView `json:"weather,omitempty"`
}

// WeatherView is the rendered snapshot. Missing payload fields leave the
// value empty around its unit, e.g. "°C".
type WeatherView struct {
	IconSrc     string            `json:"iconSrc"`
	IconAlt     string            `json:"iconAlt"`
	Temperature string            `json:"temperature"`
	Condition   string            `json:"condition"`
	Kind        weather.Condition `json:"kind"`
	Location    string            `json:"location"`
	Cards       []Card            `json:"cards"`
}

// Card is one auxiliary metric.
type Card struct {
	Glyph string `json:"glyph"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// View renders the current state.
func (p *Panel) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()

	v := View{
		Mode:        p.mode.String(),
		Class:       "app " + p.mode.String(),
		ToggleLabel: "Switch to " + toggleTarget(p.mode),
		CityInput:   p.query.CityInput,
		CurrentCity: p.query.CurrentCity,
		Status:      p.state.String(),
	}
	if p.snapshot == nil {
		v.Placeholder = LoadingText
		return v
	}
	v.Weather = renderSnapshot(p.snapshot)
	return v
}

func toggleTarget(m Mode) string {
	if m == Day {
		return "Night"
	}
	return "Day"
}

func renderSnapshot(s *weather.Payload) *WeatherView {
	text := s.ConditionText()
	return &WeatherView{
		IconSrc:     "https:" + s.ConditionIcon(),
		IconAlt:     text,
		Temperature: formatNumber(s.TempC()) + "°C",
		Condition:   text,
		Kind:        weather.ClassifyCondition(text),
		Location:    s.LocationName() + ", " + s.Country(),
		Cards: []Card{
			{Glyph: "💧", Label: "Humidity", Value: formatNumber(s.Humidity()) + "%"},
			{Glyph: "🌬", Label: "Wind", Value: formatNumber(s.WindKph()) + " km/h"},
			{Glyph: "🌡", Label: "Feels Like", Value: formatNumber(s.FeelslikeC()) + "°C"},
			{Glyph: "☁️", Label: "Clouds", Value: formatNumber(s.Cloud()) + "%"},
		},
	}
}

// formatNumber prints v in its shortest form (30, 30.5) or "" when absent.
func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
