package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lodestone/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			if flagPath, _ := cmd.Flags().GetString("config"); flagPath != "" {
				path, err = config.ExpandPath(flagPath)
				if err != nil {
					return err
				}
			}

			if !overwrite {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config already exists at %s (use --overwrite to replace it)", path)
				}
			}

			if err := config.CreateSample(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote sample config to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing config file")
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "show",
		Short:       "Show the effective configuration",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			flagPath, _ := cmd.Flags().GetString("config")
			cfg, path, exists, err := config.Load(flagPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if exists {
				fmt.Fprintf(out, "config file: %s\n", path)
			} else {
				fmt.Fprintf(out, "config file: none found (defaults in effect, would load %s)\n", path)
			}

			rows := [][]string{
				{"resolver.prefer_ipv4", fmt.Sprintf("%t", cfg.Resolver.PreferIPv4)},
				{"resolver.prefer_ipv6", fmt.Sprintf("%t", cfg.Resolver.PreferIPv6)},
				{"resolver.probe_hosts", fmt.Sprintf("%v", cfg.Resolver.ProbeHosts)},
				{"resolver.probe_timeout_seconds", fmt.Sprintf("%d", cfg.Resolver.ProbeTimeoutSeconds)},
				{"resolver.fallback_port", fmt.Sprintf("%d", cfg.Resolver.FallbackPort)},
				{"paths.home_dir", cfg.Paths.HomeDir},
				{"paths.log_dir", cfg.Paths.LogDir},
				{"journal.enabled", fmt.Sprintf("%t", cfg.Journal.Enabled)},
				{"journal.path", cfg.Journal.Path},
				{"logging.format", cfg.Logging.Format},
				{"logging.level", cfg.Logging.Level},
			}
			writeTable(out, []string{"SETTING", "VALUE"}, rows, nil)
			return nil
		},
	}
}
