package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/td0m/langtime/internal/ui"
	"github.com/td0m/langtime/pkg/dateinput"
	"github.com/td0m/langtime/pkg/langtime"
)

var dialects = []langtime.Dialect{langtime.UK, langtime.US}

func newInteractiveCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Type expressions and see them parsed as you type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, p, err := o.setup(cmd)
			if err != nil {
				return err
			}
			input := dateinput.NewModel(p, cfg.Parse)
			if cfg.Layout != "" {
				input.Layout = cfg.Layout
			}
			m := newApp(input)

			prog := tea.NewProgram(m)
			prog.EnterAltScreen()
			defer prog.ExitAltScreen()
			if err := prog.Start(); err != nil {
				return err
			}
			if m.chosen != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.RenderInstant(*m.chosen, p.Now(), input.Layout))
			}
			return nil
		},
	}
}

type app struct {
	tabs   ui.Tabs
	input  dateinput.Model
	chosen *time.Time
}

func newApp(input dateinput.Model) *app {
	tabs := make([]string, len(dialects))
	for i, d := range dialects {
		tabs[i] = d.String()
	}
	a := &app{
		tabs:  ui.NewTabs(tabs),
		input: input,
	}
	a.tabs.Set(int(input.Config().Dialect))
	a.syncInfo()
	return a
}

func (m *app) Init() tea.Cmd {
	return m.input.Init()
}

func (m *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.tabs, _ = m.tabs.Update(msg)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.chosen = m.input.Value()
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab:
			m.tabs, _ = m.tabs.Update(msg)
			cfg := m.input.Config()
			cfg.Dialect = dialects[m.tabs.Value()]
			m.input.SetConfig(cfg)
		case tea.KeyCtrlF:
			cfg := m.input.Config()
			cfg.FullMatch = !cfg.FullMatch
			m.input.SetConfig(cfg)
			m.syncInfo()
		default:
			m.input, cmd = m.input.Update(msg)
		}
	}
	return m, cmd
}

func (m *app) syncInfo() {
	m.tabs.Info = "partial match"
	if m.input.Config().FullMatch {
		m.tabs.Info = "full match"
	}
}

func (m *app) View() string {
	return m.tabs.View() + m.input.View() + "\n"
}
