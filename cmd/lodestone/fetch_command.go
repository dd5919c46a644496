package main

import (
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lodestone/internal/transfer"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var (
		output  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "Download a file over HTTP(S)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			url := args[0]
			dest := output
			if dest == "" {
				dest = path.Base(strings.TrimRight(url, "/"))
				if dest == "" || dest == "." || dest == "/" || strings.Contains(dest, ":") {
					return fmt.Errorf("cannot derive a file name from %s, use --output", url)
				}
			}

			httpClient := &http.Client{Timeout: timeout}
			client := transfer.NewClient(httpClient, logger)

			started := time.Now()
			written, err := client.FetchToFile(cmd.Context(), url, dest)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, struct {
					URL     string `json:"url"`
					Dest    string `json:"dest"`
					Bytes   int64  `json:"bytes"`
					Elapsed string `json:"elapsed"`
				}{URL: url, Dest: dest, Bytes: written, Elapsed: time.Since(started).Round(time.Millisecond).String()})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes in %s)\n",
				dest, written, time.Since(started).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (defaults to the URL's last path segment)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "overall transfer timeout (0 means no limit)")
	return cmd
}
