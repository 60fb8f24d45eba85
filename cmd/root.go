package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "animix",
		Short:         "Animix bot: automate pet hatching, breeding, missions and rewards",
		Long:          "animix runs the Animix game routine for every configured account: it claims gacha bonuses, hatches and breeds pets, fills missions, completes quests and achievements, and claims season pass rewards, then waits and repeats.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", envOrDefault("ANIMIX_CONFIG", ""), "Config file (default: ./config.toml or ~/.config/animix/config.toml)")

	load := func(cmd *cobra.Command) (*app, error) {
		return wireApp(configPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(load),
		newStatusCmd(load),
		newAccountCmd(load),
		newProxyCmd(load),
		newConfigCmd(load),
	)

	return rootCmd
}
