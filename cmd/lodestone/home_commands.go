package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lodestone/internal/home"
)

func newHomeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Manage the agent home directory",
	}
	cmd.AddCommand(newHomeInitCommand(ctx))
	cmd.AddCommand(newHomeShowCommand(ctx))
	return cmd
}

func newHomeInitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create and validate the home directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := ctx.openHome()
			if err != nil {
				return err
			}

			id, err := h.InstanceID()
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, struct {
					Dir        string `json:"dir"`
					InstanceID string `json:"instance_id"`
				}{Dir: h.Dir(), InstanceID: id})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "home ready at %s\n", h.Dir())
			fmt.Fprintf(out, "instance id %s\n", id)
			return nil
		},
	}
}

func newHomeShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show home directory details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := ctx.openHome()
			if err != nil {
				return err
			}

			id, err := h.InstanceID()
			if err != nil {
				return err
			}

			locked, err := h.TryLock()
			if err != nil {
				return err
			}
			if locked {
				defer func() { _ = h.Unlock() }()
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, struct {
					Dir        string `json:"dir"`
					LogDir     string `json:"log_dir"`
					InstanceID string `json:"instance_id"`
					InUse      bool   `json:"in_use"`
				}{Dir: h.Dir(), LogDir: h.LogDir(), InstanceID: id, InUse: !locked})
			}

			rows := [][]string{
				{"dir", h.Dir()},
				{"log dir", h.LogDir()},
				{"instance id", id},
				{"in use", fmt.Sprintf("%t", !locked)},
			}
			writeTable(cmd.OutOrStdout(), []string{"PROPERTY", "VALUE"}, rows, nil)
			return nil
		},
	}
}

func (c *commandContext) openHome() (*home.Home, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return home.Open(cfg.Paths.HomeDir, logger)
}
