package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type waitSpinnerModel struct {
	spinner  spinner.Model
	now      func() time.Time
	deadline time.Time
	done     bool
}

func newWaitSpinnerModel(now func() time.Time, deadline time.Time) waitSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return waitSpinnerModel{
		spinner:  s,
		now:      now,
		deadline: deadline,
	}
}

func (m waitSpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m waitSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.now().Before(m.deadline) {
			m.done = true
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m waitSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s Next pass in %s", m.spinner.View(), formatCountdown(m.deadline.Sub(m.now())))
}

func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)

	hours := int(d / time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	seconds := int(d%time.Minute) / int(time.Second)
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}

	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// runWaitSpinner shows a countdown until deadline. It returns ctx.Err() when
// the wait is interrupted.
func runWaitSpinner(ctx context.Context, output io.Writer, now func() time.Time, deadline time.Time) error {
	p := tea.NewProgram(
		newWaitSpinnerModel(now, deadline),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return context.Canceled
		}
		return err
	}

	return nil
}
