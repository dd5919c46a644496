package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHostnameCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "hostname",
		Short: "Print the machine's resolved host name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.newResolver()
			if err != nil {
				return err
			}

			name := r.LocalHostName(cmd.Context())
			if ctx.jsonOutput() {
				return writeJSON(cmd, struct {
					Hostname string `json:"hostname"`
				}{Hostname: name})
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}
