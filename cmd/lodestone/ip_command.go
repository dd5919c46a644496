package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type strategyJSON struct {
	Strategy string `json:"strategy"`
	Address  string `json:"address,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newIPCommand(ctx *commandContext) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "ip",
		Short: "Print the machine's usable non-loopback address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.newResolver()
			if err != nil {
				return err
			}

			ip, results := r.LocalAddressDetail(cmd.Context())

			if ctx.jsonOutput() {
				payload := struct {
					Address    string         `json:"address"`
					Strategies []strategyJSON `json:"strategies"`
				}{Address: ip.String()}
				for _, result := range results {
					entry := strategyJSON{Strategy: result.Strategy}
					if result.Address != nil {
						entry.Address = result.Address.String()
					}
					if result.Err != nil {
						entry.Error = result.Err.Error()
					}
					payload.Strategies = append(payload.Strategies, entry)
				}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			if verbose {
				rows := make([][]string, 0, len(results))
				for _, result := range results {
					address, detail := "-", ""
					if result.Address != nil {
						address = result.Address.String()
					}
					if result.Err != nil {
						detail = result.Err.Error()
					}
					rows = append(rows, []string{result.Strategy, address, detail})
				}
				writeTable(out, []string{"STRATEGY", "ADDRESS", "ERROR"}, rows, nil)
			}
			fmt.Fprintln(out, ip.String())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the outcome of every strategy")
	return cmd
}
