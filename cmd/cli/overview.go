package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hubman-io/hubman/internal/common"
	"github.com/hubman-io/hubman/internal/hub"
	"github.com/hubman-io/hubman/internal/models"
)

const overviewRefreshInterval = time.Second * 5

type overviewState struct {
	health models.Health
	users  []models.User
}

type overviewErr struct {
	err error
}

type overviewTick struct{}

type overviewModel struct {
	client     *hub.Client
	spinner    spinner.Model
	state      *overviewState
	loading    bool
	err        error
	lastUpdate time.Time
	quitting   bool
}

func newOverviewModel(client *hub.Client) overviewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6"))

	return overviewModel{
		client:  client,
		spinner: s,
		loading: true,
	}
}

func (m overviewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchState)
}

func (m overviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.fetchState
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case *overviewState:
		m.loading = false
		m.err = nil
		m.state = msg
		m.lastUpdate = time.Now()
		return m, tea.Tick(overviewRefreshInterval, func(t time.Time) tea.Msg {
			return overviewTick{}
		})

	case overviewTick:
		return m, m.fetchState

	case overviewErr:
		m.loading = false
		m.err = msg.err
		// Keep polling so a transient hub outage recovers on its own
		return m, tea.Tick(overviewRefreshInterval, func(t time.Time) tea.Msg {
			return overviewTick{}
		})

	case tea.WindowSizeMsg:
		return m, nil
	}

	return m, nil
}

func (m overviewModel) View() string {
	if m.quitting {
		return ""
	}

	if m.loading && m.state == nil {
		return fmt.Sprintf("\n %s Connecting to hub...\n\n", m.spinner.View())
	}

	var content strings.Builder

	content.WriteString(titleStyle.Render("Hub Overview"))
	content.WriteString("\n")

	if m.err != nil {
		content.WriteString(errorStyle.Render(fmt.Sprintf("Error: %s", m.err.Error())))
		content.WriteString("\n\n")
	}

	if m.state != nil {
		content.WriteString(m.renderHealth())
		content.WriteString("\n\n")
		content.WriteString(m.renderUsers())
		content.WriteString("\n")
	}

	if !m.lastUpdate.IsZero() {
		content.WriteString(fmt.Sprintf("Last updated: %s", m.lastUpdate.Format("15:04:05")))
		content.WriteString("\n")
	}

	content.WriteString("Press r to refresh, q to return to the menu")
	content.WriteString("\n")

	return content.String()
}

func (m overviewModel) renderHealth() string {
	if m.state.health.Status == models.HealthStatusOK {
		return "Hub: " + successStyle.Render("HEALTHY")
	}
	return "Hub: " + errorStyle.Render(fmt.Sprintf("UNHEALTHY (%s)", m.state.health.Detail))
}

func (m overviewModel) renderUsers() string {
	var section strings.Builder

	running := 0
	for _, user := range m.state.users {
		if user.HasActiveServer() {
			running++
		}
	}

	section.WriteString(headerStyle.Render(
		fmt.Sprintf("Users: %d total, %d with running servers", len(m.state.users), running)))
	section.WriteString("\n\n")

	for _, user := range m.state.users {
		line := "  " + user.Name
		if user.Admin {
			line += " " + adminBadgeStyle.Render("ADMIN")
		}

		switch {
		case user.HasActiveServer():
			line += "  " + readyStyle.Render("running")
		case len(user.Pending) > 0:
			line += "  " + pendingStyle.Render(user.Pending)
		default:
			line += "  " + stoppedStyle.Render("stopped")
		}

		section.WriteString(line)
		section.WriteString("\n")
	}

	return section.String()
}

// fetchState pulls a fresh snapshot from the hub. Health never errors; a
// failing user list is reported but does not kill the overview.
func (m overviewModel) fetchState() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.GetRequestTimeout())
	defer cancel()

	health := m.client.GetHealth(ctx)

	records, err := m.client.ListUsers(ctx)
	if err != nil {
		return overviewErr{err: err}
	}

	var users []models.User
	if err := common.ConvertSliceToInterface(records, &users); err != nil {
		return overviewErr{err: fmt.Errorf("failed to parse users: %w", err)}
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].Name < users[j].Name
	})

	return &overviewState{health: health, users: users}
}

// runOverview runs the live overview until the user quits back to the menu.
func runOverview(client *hub.Client) error {
	program := tea.NewProgram(newOverviewModel(client))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("overview error: %w", err)
	}
	return nil
}
