package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"lodestone/internal/ifwatch"
	"lodestone/internal/journal"
	"lodestone/internal/logging"
	"lodestone/internal/resolver"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch interface hotplug events until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			// Watch sessions run long; mirror their logs to the log
			// directory instead of the stderr-only command logger.
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			r := resolver.NewFromConfig(cfg, logger)

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var store *journal.Store
			if cfg.Journal.Enabled && strings.TrimSpace(cfg.Journal.Path) != "" {
				store, err = journal.Open(cfg.Journal.Path)
				if err != nil {
					return fmt.Errorf("open journal: %w", err)
				}
				defer store.Close()
			}

			// Record where discovery lands before any hotplug happens, so a
			// later event can be read against a known starting point.
			address := r.LocalAddress(runCtx)
			if store != nil {
				if err := store.Append(runCtx, journal.Event{
					Kind:   journal.KindSnapshot,
					Detail: address.String(),
				}); err != nil {
					logger.Warn("failed to journal snapshot", logging.Error(err))
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "local address %s, watching for interface changes (Ctrl-C to stop)\n", address)

			monitor := ifwatch.NewMonitor(logger, func(event ifwatch.Event) {
				fmt.Fprintf(out, "%s %s\n", event.Action, event.Interface)
				if store == nil {
					return
				}
				var kind string
				switch event.Action {
				case "add":
					kind = journal.KindInterfaceAdd
				case "remove":
					kind = journal.KindInterfaceRemove
				case "move":
					kind = journal.KindInterfaceMove
				default:
					return
				}
				if err := store.Append(runCtx, journal.Event{
					Kind:      kind,
					Interface: event.Interface,
				}); err != nil {
					logger.Warn("failed to journal interface event", logging.Error(err))
				}
			})
			if err := monitor.Start(runCtx); err != nil {
				return err
			}
			defer monitor.Stop()

			<-runCtx.Done()
			return nil
		},
	}
}
