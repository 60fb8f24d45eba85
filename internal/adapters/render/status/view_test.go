package status

import (
	"errors"
	"testing"

	"github.com/bnema/animix-bot/internal/application"
	"github.com/bnema/animix-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSingleAccountStatus(t *testing.T) {
	output, err := Render([]application.Status{
		{
			Account: domain.Account{Index: 1, Token: "query_id=AAHdF6IQAAAAAN0XohDhrOrc"},
			User:    domain.UserInfo{Username: "neko", TokenBalance: 1500, GodPower: 2},
			Bonus:   domain.GachaBonus{CurrentStep: 4, GodPowerStep: 5, DNAStep: 3},
			Units:   12,
			Missions: application.StatusMissions{
				Open:      2,
				Active:    1,
				Completed: 1,
			},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "accounts: 1")
	assert.Contains(t, output, "#1 neko (query_...rOrc)")
	assert.Contains(t, output, "god power: 2  tokens: 1500")
	assert.Contains(t, output, "god power bonus:")
	assert.Contains(t, output, "4/5")
	assert.Contains(t, output, "dna bonus:")
	assert.Contains(t, output, "ready")
	assert.Contains(t, output, "missions: 2 open, 1 running, 1 ready to claim")
	assert.Contains(t, output, "pets: 12 units")
	assert.Contains(t, output, "total: 12 pet units, 1 missions ready to claim, 1 bonuses ready")
	assert.NotContains(t, output, "failed to fetch")
	assert.NotContains(t, output, "query_id=AAHdF6IQAAAAAN0XohDhrOrc")
}

func TestRenderMultiAccountStatusWithError(t *testing.T) {
	output, err := Render([]application.Status{
		{
			Account: domain.Account{Index: 1, Token: "short"},
			Err:     errors.New("fetch user info: status 401"),
		},
		{
			Account: domain.Account{Index: 2, Token: "another-long-token-value"},
			User:    domain.UserInfo{Username: "backup"},
			Bonus:   domain.GachaBonus{CurrentStep: 9, GodPowerStep: 5, GodPowerClaimed: true},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "accounts: 2")
	assert.Contains(t, output, "#1 unknown (*****)")
	assert.Contains(t, output, "error: fetch user info: status 401")
	assert.Contains(t, output, "#2 backup")
	assert.Contains(t, output, "claimed")
	assert.Contains(t, output, "n/a")
	assert.Contains(t, output, "failed to fetch: 1")
	assert.Contains(t, output, "total: 0 pet units, 0 missions ready to claim, 0 bonuses ready")
}

func TestRenderWhenEveryAccountFailed(t *testing.T) {
	output, err := Render([]application.Status{
		{Account: domain.Account{Index: 1, Token: "short"}, Err: errors.New("dial tcp: timeout")},
		{Account: domain.Account{Index: 2, Token: "tiny"}, Err: errors.New("status 403")},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "failed to fetch: 2")
	assert.Contains(t, output, "error: dial tcp: timeout")
	assert.Contains(t, output, "error: status 403")
	assert.Contains(t, output, "No account could be fetched.")
	assert.NotContains(t, output, "total:")
}

func TestSummarizeSkipsFailedAccounts(t *testing.T) {
	summary := summarize([]application.Status{
		{
			Units:    4,
			Missions: application.StatusMissions{Completed: 2},
			Bonus:    domain.GachaBonus{CurrentStep: 5, GodPowerStep: 5},
		},
		{
			Units: 7,
			Bonus: domain.GachaBonus{CurrentStep: 1, DNAStep: 3},
		},
		{
			Units:    100,
			Missions: application.StatusMissions{Completed: 9},
			Err:      errors.New("boom"),
		},
	})

	assert.Equal(t, fleetSummary{Accounts: 3, Failed: 1, Units: 11, ReadyMissions: 2, ReadyBonuses: 1}, summary)
	assert.False(t, summary.allFailed())
	assert.False(t, fleetSummary{}.allFailed())
}

func TestRenderWithoutAccounts(t *testing.T) {
	output, err := Render(nil)

	require.NoError(t, err)
	assert.Contains(t, output, "accounts: 0")
	assert.Contains(t, output, "No accounts configured.")
}

func TestRenderProgressBarClamps(t *testing.T) {
	s := newStyles()

	assert.Equal(t, 10, countRune(renderProgressBar(2, 10, s), '='))
	assert.Equal(t, 10, countRune(renderProgressBar(-1, 10, s), '-'))
	assert.Equal(t, 5, countRune(renderProgressBar(0.5, 10, s), '='))
	assert.Empty(t, renderProgressBar(0.5, 0, s))
}

func countRune(s string, r rune) int {
	count := 0
	for _, c := range s {
		if c == r {
			count++
		}
	}
	return count
}
