package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"
)

func newPortCommand(ctx *commandContext) *cobra.Command {
	var bindFlag string
	var preferFlag int

	cmd := &cobra.Command{
		Use:   "port",
		Short: "Probe for an available listening port",
		Long: "Probe for an available listening port. The result is a hint, not a\n" +
			"reservation: the probe socket is closed before the port is reported.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.newResolver()
			if err != nil {
				return err
			}

			var bind net.IP
			if bindFlag != "" {
				bind = net.ParseIP(bindFlag)
				if bind == nil {
					return fmt.Errorf("invalid bind address %q", bindFlag)
				}
			}
			if preferFlag < 0 || preferFlag > 65535 {
				return fmt.Errorf("preferred port %d out of range", preferFlag)
			}

			port := r.AvailablePort(bind, preferFlag)
			if ctx.jsonOutput() {
				return writeJSON(cmd, struct {
					Port int `json:"port"`
				}{Port: port})
			}
			fmt.Fprintln(cmd.OutOrStdout(), port)
			return nil
		},
	}

	cmd.Flags().StringVar(&bindFlag, "bind", "", "Address to bind the probe socket to (default: all)")
	cmd.Flags().IntVar(&preferFlag, "prefer", 0, "Preferred port (0 asks the OS for an ephemeral port)")
	return cmd
}
