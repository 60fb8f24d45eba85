package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/animix-bot/internal/application"
	"github.com/spf13/cobra"
)

func newStatusCmd(load appLoader) *cobra.Command {
	var accountIndex int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Fetch and display account state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			statuses, err := loadStatuses(cmd, app, accountIndex)
			if err != nil {
				return err
			}

			return writeStatusesOutput(cmd, app, statuses, asJSON)
		},
	}

	cmd.Flags().IntVar(&accountIndex, "account", 0, "Account number as listed by 'animix account list' (default: all accounts)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

type statusJSON struct {
	Account  int                        `json:"account"`
	Token    string                     `json:"token"`
	Username string                     `json:"username,omitempty"`
	Tokens   int64                      `json:"tokens"`
	GodPower int                        `json:"god_power"`
	Units    int                        `json:"pet_units"`
	Bonus    statusBonusJSON            `json:"gacha_bonus"`
	Missions application.StatusMissions `json:"missions"`
	Error    string                     `json:"error,omitempty"`
}

type statusBonusJSON struct {
	CurrentStep     int  `json:"current_step"`
	GodPowerStep    int  `json:"god_power_step"`
	GodPowerClaimed bool `json:"god_power_claimed"`
	DNAStep         int  `json:"dna_step"`
	DNAClaimed      bool `json:"dna_claimed"`
}

func toStatusJSON(status application.Status) statusJSON {
	out := statusJSON{
		Account:  status.Account.Index,
		Token:    status.Account.MaskedToken(),
		Username: status.User.Username,
		Tokens:   status.User.TokenBalance,
		GodPower: status.User.GodPower,
		Units:    status.Units,
		Bonus: statusBonusJSON{
			CurrentStep:     status.Bonus.CurrentStep,
			GodPowerStep:    status.Bonus.GodPowerStep,
			GodPowerClaimed: status.Bonus.GodPowerClaimed,
			DNAStep:         status.Bonus.DNAStep,
			DNAClaimed:      status.Bonus.DNAClaimed,
		},
		Missions: status.Missions,
	}
	if status.Err != nil {
		out.Error = status.Err.Error()
	}

	return out
}

func writeStatusesOutput(cmd *cobra.Command, app *app, statuses []application.Status, asJSON bool) error {
	if asJSON {
		payload := make([]statusJSON, 0, len(statuses))
		for _, status := range statuses {
			payload = append(payload, toStatusJSON(status))
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	rendered, err := app.statusRenderer(statuses)
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func loadStatuses(cmd *cobra.Command, app *app, accountIndex int) ([]application.Status, error) {
	if accountIndex <= 0 {
		return app.statusService.GetStatusAll(cmd.Context())
	}

	status, err := app.statusService.GetStatus(cmd.Context(), accountIndex)
	if err != nil {
		return nil, err
	}

	return []application.Status{status}, nil
}
