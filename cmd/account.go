package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newAccountCmd(load appLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect configured accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(load),
	)

	return cmd
}

func newAccountListCmd(load appLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts from the token file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			accounts, err := app.tokens.Accounts(cmd.Context())
			if err != nil {
				return err
			}

			tw := newListTable(cmd)
			tw.AppendHeader(table.Row{"#", "Token"})
			for _, account := range accounts {
				tw.AppendRow(table.Row{account.Index, account.MaskedToken()})
			}
			tw.AppendFooter(table.Row{"", app.cfg.Accounts.Path})
			tw.Render()

			return nil
		},
	}
}

func newListTable(cmd *cobra.Command) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetStyle(table.StyleLight)
	return tw
}
