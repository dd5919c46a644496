package main

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve HOST",
		Short: "Resolve a host name to all of its addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.newResolver()
			if err != nil {
				return err
			}

			host := args[0]
			addrs := r.AddressesForHost(cmd.Context(), host)

			if ctx.jsonOutput() {
				payload := struct {
					Host      string   `json:"host"`
					Addresses []string `json:"addresses"`
				}{Host: host, Addresses: make([]string, 0, len(addrs))}
				for _, ip := range addrs {
					payload.Addresses = append(payload.Addresses, ip.String())
				}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			if len(addrs) == 0 {
				fmt.Fprintf(out, "%s did not resolve to any address\n", host)
				return nil
			}

			rows := make([][]string, 0, len(addrs))
			for i, ip := range addrs {
				rows = append(rows, []string{strconv.Itoa(i + 1), ip.String(), family(ip)})
			}
			writeTable(out, []string{"#", "ADDRESS", "FAMILY"}, rows, []columnAlignment{alignRight})
			return nil
		},
	}
}

func family(ip net.IP) string {
	if ip.To4() != nil {
		return "IPv4"
	}
	return "IPv6"
}
