package cmd

import (
	"fmt"

	"github.com/bnema/animix-bot/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(load appLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the config file",
	}

	cmd.AddCommand(
		newConfigInitCmd(),
		newConfigShowCmd(load),
	)

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteFile(path, config.Default(), force); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", config.DefaultFileName, "Destination path")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func newConfigShowCmd(load appLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			data, err := config.Encode(app.cfg)
			if err != nil {
				return err
			}

			source := app.cfg.Source
			if source == "" {
				source = "defaults"
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", source); err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
