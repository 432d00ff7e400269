package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/quietharbor/haven/internal/app"
	"github.com/quietharbor/haven/internal/cli/formatter"
)

// dashboardKeys are the key bindings active in the status dashboard.
type dashboardKeys struct {
	Quit key.Binding
	Up   key.Binding
	Down key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
		Up:   key.NewBinding(key.WithKeys("up", "k")),
		Down: key.NewBinding(key.WithKeys("down", "j")),
	}
}

// dashboardModel renders the session status inside a scrollable viewport.
type dashboardModel struct {
	status   *app.StatusResponse
	viewport viewport.Model
	keys     dashboardKeys
	ready    bool
}

func newDashboardModel(status *app.StatusResponse) dashboardModel {
	return dashboardModel{
		status: status,
		keys:   newDashboardKeys(),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.viewport.ScrollUp(1)
		case key.Matches(msg, m.keys.Down):
			m.viewport.ScrollDown(1)
		}

	case tea.WindowSizeMsg:
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			m.viewport.SetContent(formatter.FormatStatus(m.status))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m dashboardModel) View() string {
	if !m.ready {
		return formatter.Dim("loading...")
	}
	return m.viewport.View() + "\n" + formatter.Dim("↑/↓ scroll · q quit")
}
