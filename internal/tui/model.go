// Package tui renders the weather panel in the terminal with Bubble Tea.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/i474232898/weather-panel/internal/panel"
	"github.com/i474232898/weather-panel/internal/weather"
)

// fetchedMsg carries the outcome of one panel request back to Update.
type fetchedMsg struct {
	req     panel.Request
	payload *weather.Payload
	err     error
}

// Model is the bubbletea model wrapping a panel.
type Model struct {
	panel    *panel.Panel
	input    textinput.Model
	width    int
	height   int
	quitting bool
}

// New creates the model. The panel is shared, not copied.
func New(p *panel.Panel) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter city name"
	ti.Width = 30
	ti.SetValue(p.Query().CityInput)
	ti.Focus()

	return Model{
		panel: p,
		input: ti,
	}
}

// Init fetches the default city.
func (m Model) Init() tea.Cmd {
	req, ok := m.panel.Begin(m.panel.DefaultCity())
	if !ok {
		return nil
	}
	return m.fetch(req)
}

// fetch runs the request off the event loop. A newer request does not cancel
// it; Complete drops the result if it arrives late.
func (m Model) fetch(req panel.Request) tea.Cmd {
	p := m.panel
	return func() tea.Msg {
		payload, err := p.Fetch(context.Background(), req)
		return fetchedMsg{req: req, payload: payload, err: err}
	}
}

// Update handles keys, window resizes and fetch results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case fetchedMsg:
		m.panel.Complete(msg.req, msg.payload, msg.err)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			req, ok := m.panel.BeginSubmit()
			if !ok {
				return m, nil
			}
			return m, m.fetch(req)

		case "tab", "ctrl+t":
			m.panel.ToggleMode()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.panel.UpdateCityInput(m.input.Value())
	return m, cmd
}

// View renders the panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	mode := m.panel.Mode()
	st := stylesFor(mode)
	v := m.panel.View()

	var b strings.Builder

	b.WriteString(st.title.Render("Today's Weather"))
	b.WriteString("\n\n")
	b.WriteString(st.button.Render(v.ToggleLabel))
	b.WriteString("\n\n")
	b.WriteString(st.input.Render(m.input.View()))
	b.WriteString("\n\n")

	if v.Weather == nil {
		b.WriteString(st.muted.Render(v.Placeholder))
	} else {
		w := v.Weather
		b.WriteString(conditionGlyph(w.Kind, mode) + "  " + st.temp.Render(w.Temperature))
		b.WriteString("\n")
		b.WriteString(w.Condition)
		b.WriteString("\n")
		b.WriteString(st.muted.Render(w.Location))
		b.WriteString("\n")
		b.WriteString(st.muted.Render(w.IconSrc))
		b.WriteString("\n\n")

		cards := make([]string, 0, len(w.Cards))
		for _, c := range w.Cards {
			cards = append(cards, st.card.Render(c.Glyph+" "+c.Label+"\n"+st.cardText.Render(c.Value)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	b.WriteString("\n\n")
	b.WriteString(st.help.Render("enter: search • tab: day/night • esc: quit"))

	return st.app.Render(b.String())
}
