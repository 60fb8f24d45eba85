package status

import (
	"errors"
	"io"

	"github.com/bnema/animix-bot/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// accountsLoadedMsg hands the fetched snapshots to the model.
type accountsLoadedMsg struct {
	statuses []application.Status
}

// fleetSummary aggregates what can be acted on across all accounts.
// Failed accounts only count toward Failed.
type fleetSummary struct {
	Accounts      int
	Failed        int
	Units         int
	ReadyMissions int
	ReadyBonuses  int
}

func summarize(statuses []application.Status) fleetSummary {
	summary := fleetSummary{Accounts: len(statuses)}
	for _, status := range statuses {
		if status.Err != nil {
			summary.Failed++
			continue
		}

		summary.Units += status.Units
		summary.ReadyMissions += status.Missions.Completed
		if _, ok := status.Bonus.Claimable(); ok {
			summary.ReadyBonuses++
		}
	}

	return summary
}

func (s fleetSummary) allFailed() bool {
	return s.Accounts > 0 && s.Failed == s.Accounts
}

type accountsModel struct {
	pending  []application.Status
	statuses []application.Status
	summary  fleetSummary
	styles   styles
	output   string
}

func newAccountsModel(statuses []application.Status) accountsModel {
	return accountsModel{
		pending: statuses,
		styles:  newStyles(),
	}
}

func (m accountsModel) Init() tea.Cmd {
	statuses := m.pending
	return func() tea.Msg {
		return accountsLoadedMsg{statuses: statuses}
	}
}

func (m accountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	loaded, ok := msg.(accountsLoadedMsg)
	if !ok {
		return m, nil
	}

	m.statuses = loaded.statuses
	m.summary = summarize(loaded.statuses)
	m.output = renderView(m.statuses, m.summary, m.styles)
	return m, tea.Quit
}

func (m accountsModel) View() string {
	return m.output
}

// Render draws the account snapshots, one section per account plus a fleet summary.
func Render(statuses []application.Status) (string, error) {
	p := tea.NewProgram(
		newAccountsModel(statuses),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(accountsModel)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
