package status

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/animix-bot/internal/application"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 20

func renderView(statuses []application.Status, summary fleetSummary, s styles) string {
	lines := []string{
		s.title.Render("Animix Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", summary.Accounts)),
	}

	if summary.Accounts == 0 {
		lines = append(lines, s.empty.Render("No accounts configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	if summary.Failed > 0 {
		lines = append(lines, s.warning.Render(fmt.Sprintf("failed to fetch: %d", summary.Failed)))
	}

	for _, status := range statuses {
		lines = append(lines, s.section.Render(renderAccount(status, s)))
	}

	if summary.allFailed() {
		lines = append(lines, s.warning.Render("No account could be fetched. Check tokens and proxies."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.header.Render(fmt.Sprintf(
		"total: %d pet units, %d missions ready to claim, %d bonuses ready",
		summary.Units, summary.ReadyMissions, summary.ReadyBonuses,
	)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccount(status application.Status, s styles) string {
	parts := []string{
		s.account.Render(accountTitle(status)),
	}

	if status.Err != nil {
		parts = append(parts, s.warning.Render("error: "+status.Err.Error()))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	parts = append(parts,
		s.detail.Render(fmt.Sprintf("god power: %d  tokens: %d", status.User.GodPower, status.User.TokenBalance)),
		bonusLine("god power bonus", status.Bonus.CurrentStep, status.Bonus.GodPowerStep, status.Bonus.GodPowerClaimed, s),
		bonusLine("dna bonus", status.Bonus.CurrentStep, status.Bonus.DNAStep, status.Bonus.DNAClaimed, s),
		s.detail.Render(missionsLine(status.Missions)),
		s.detail.Render(fmt.Sprintf("pets: %d units", status.Units)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func accountTitle(status application.Status) string {
	name := strings.TrimSpace(status.User.Username)
	if name == "" {
		name = "unknown"
	}

	return fmt.Sprintf("#%d %s (%s)", status.Account.Index, name, status.Account.MaskedToken())
}

func bonusLine(label string, current, threshold int, claimed bool, s styles) string {
	key := s.bonusKey.Render(label + ":")
	if threshold <= 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, key, " ", s.empty.Render("n/a"))
	}

	var state string
	switch {
	case claimed:
		state = s.empty.Render("claimed")
	case current >= threshold:
		state = s.ready.Render("ready")
	default:
		state = s.detail.Render(fmt.Sprintf("%d/%d", current, threshold))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		key,
		" ",
		renderProgressBar(float64(current)/float64(threshold), barWidth, s),
		" ",
		state,
	)
}

func missionsLine(missions application.StatusMissions) string {
	return fmt.Sprintf("missions: %d open, %d running, %d ready to claim", missions.Open, missions.Active, missions.Completed)
}

func renderProgressBar(fraction float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampFraction(fraction)))
	empty := width - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
