package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lodestone/internal/journal"
)

func newJournalCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect the watch event journal",
	}
	cmd.AddCommand(newJournalRecentCommand(ctx))
	return cmd
}

func newJournalRecentCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent journaled events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Journal.Enabled || strings.TrimSpace(cfg.Journal.Path) == "" {
				return errors.New("journal is not enabled; set journal.enabled and journal.path in the config")
			}

			store, err := journal.Open(cfg.Journal.Path)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			events, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				type eventJSON struct {
					ID         int64  `json:"id"`
					ObservedAt string `json:"observed_at"`
					Kind       string `json:"kind"`
					Interface  string `json:"interface,omitempty"`
					Detail     string `json:"detail,omitempty"`
				}
				payload := make([]eventJSON, 0, len(events))
				for _, event := range events {
					payload = append(payload, eventJSON{
						ID:         event.ID,
						ObservedAt: event.ObservedAt.Format(time.RFC3339),
						Kind:       event.Kind,
						Interface:  event.Interface,
						Detail:     event.Detail,
					})
				}
				return writeJSON(cmd, payload)
			}

			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "journal is empty")
				return nil
			}

			rows := make([][]string, 0, len(events))
			for _, event := range events {
				rows = append(rows, []string{
					strconv.FormatInt(event.ID, 10),
					event.ObservedAt.Local().Format("2006-01-02 15:04:05"),
					event.Kind,
					event.Interface,
					event.Detail,
				})
			}
			writeTable(cmd.OutOrStdout(), []string{"#", "OBSERVED", "KIND", "INTERFACE", "DETAIL"}, rows, []columnAlignment{alignRight})
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of events to show")
	return cmd
}
