// Package dateinput is a bubbletea text input that parses what is typed into
// an instant as the user types.
package dateinput

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/langtime/internal/ui"
	"github.com/td0m/langtime/pkg/langtime"
)

var (
	indicator = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	checkmark = indicator.Copy().
			Foreground(lipgloss.AdaptiveColor{Light: "#00ad3b", Dark: "#73F59F"}).
			Render("✓")

	cross = indicator.Copy().
		Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "#FF5047"}).
		Render("✗")

	faded = lipgloss.AdaptiveColor{Light: "#666", Dark: "#999"}
)

type Model struct {
	i      textinput.Model
	parser *langtime.Parser
	cfg    langtime.Config
	value  *time.Time

	Label  string
	Layout string
}

func NewModel(parser *langtime.Parser, cfg langtime.Config) Model {
	i := textinput.NewModel()
	i.Focus()
	i.CharLimit = 64
	i.Prompt = ""
	return Model{
		i:      i,
		parser: parser,
		cfg:    cfg,
		Label:  "date",
		Layout: ui.Layout,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update feeds key presses to the text input and parses the new text.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.i, cmd = m.i.Update(msg)
		m.parse()
		return m, cmd
	}
	m.i, cmd = m.i.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	indicator := cross
	if m.i.Value() == "" {
		indicator = ""
	} else if m.value != nil {
		indicator = checkmark + " " + ui.RenderInstant(*m.value, m.parser.Now(), m.Layout)
	}
	return lipgloss.NewStyle().Foreground(faded).Render(m.Label+": ") + m.i.View() + indicator
}

// Value is the parsed instant, nil while the text does not parse.
func (m *Model) Value() *time.Time {
	return m.value
}

func (m *Model) Text() string {
	return m.i.Value()
}

func (m *Model) SetText(s string) {
	m.i.SetValue(s)
	m.parse()
}

// SetConfig changes the dialect or strictness and parses the text again.
func (m *Model) SetConfig(cfg langtime.Config) {
	m.cfg = cfg
	m.parse()
}

func (m *Model) Config() langtime.Config {
	return m.cfg
}

func (m *Model) parse() {
	m.value = nil
	if m.i.Value() == "" {
		return
	}
	if t, err := m.parser.Parse(m.i.Value(), m.cfg); err == nil {
		m.value = &t
	}
}
