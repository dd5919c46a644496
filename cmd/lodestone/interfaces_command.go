package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newInterfacesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interfaces",
		Short: "List network interfaces and how the scanner treats them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := ctx.newResolver()
			if err != nil {
				return err
			}

			ifaces, err := r.Interfaces()
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				type ifaceJSON struct {
					Name      string   `json:"name"`
					Up        bool     `json:"up"`
					Candidate bool     `json:"candidate"`
					Addresses []string `json:"addresses"`
				}
				payload := make([]ifaceJSON, 0, len(ifaces))
				for _, iface := range ifaces {
					entry := ifaceJSON{
						Name:      iface.Name,
						Up:        iface.Up,
						Candidate: iface.IsCandidate(),
						Addresses: make([]string, 0, len(iface.Addrs)),
					}
					for _, ip := range iface.Addrs {
						entry.Addresses = append(entry.Addresses, ip.String())
					}
					payload = append(payload, entry)
				}
				return writeJSON(cmd, payload)
			}

			rows := make([][]string, 0, len(ifaces))
			for _, iface := range ifaces {
				state := "down"
				if iface.Up {
					state = "up"
				}
				candidate := "skipped"
				if iface.IsCandidate() {
					candidate = "scanned"
				}
				addrs := make([]string, 0, len(iface.Addrs))
				for _, ip := range iface.Addrs {
					addrs = append(addrs, ip.String())
				}
				rows = append(rows, []string{iface.Name, state, candidate, strings.Join(addrs, ", ")})
			}
			writeTable(cmd.OutOrStdout(), []string{"INTERFACE", "STATE", "SCAN", "ADDRESSES"}, rows, nil)
			return nil
		},
	}
}
