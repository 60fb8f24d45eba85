package cmd

import (
	"strings"

	"github.com/bnema/animix-bot/internal/adapters/animix"
	"github.com/bnema/animix-bot/internal/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newProxyCmd(load appLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proxy",
		Short: "Inspect configured proxies",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List proxies from the proxy file, without credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			proxies, err := app.proxies.List(cmd.Context())
			if err != nil {
				return err
			}

			tw := newListTable(cmd)
			tw.AppendHeader(table.Row{"#", "Scheme", "Host"})
			for i, proxy := range proxies {
				tw.AppendRow(table.Row{i + 1, proxyScheme(proxy), domain.ProxyHost(proxy)})
			}
			if len(proxies) == 0 {
				tw.AppendRow(table.Row{"-", "direct", "none"})
			}
			tw.Render()

			return nil
		},
	})

	return cmd
}

func proxyScheme(proxy string) string {
	normalized := animix.NormalizeProxy(proxy)
	scheme, _, found := strings.Cut(normalized, "://")
	if !found {
		return "http"
	}

	return scheme
}
