// Package transfer streams HTTP(S) resources into local files.
package transfer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"lodestone/internal/logging"
)

// copyBufferSize bounds how much of the response body is held in memory at
// once while streaming to disk.
const copyBufferSize = 4 * 1024

// Client downloads files over HTTP(S). The zero http.Client imposes no overall
// timeout; the transfer follows the server's pace and callers wanting a bound
// must supply a context or a client with a timeout.
type Client struct {
	http   *http.Client
	logger *slog.Logger
}

// NewClient creates a transfer client. A nil httpClient gets a default one
// with no timeout.
func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		http:   httpClient,
		logger: logging.NewComponentLogger(logger, "transfer"),
	}
}

// FetchToFile streams the body of url into dest in fixed-size chunks and
// returns the number of bytes written. The response body and the file are
// closed on every path. Unlike the discovery operations, failures here are
// surfaced to the caller: there is no safe default for a missing download.
// A partially written dest is left in place on error; cleanup is the caller's
// responsibility.
func (c *Client) FetchToFile(ctx context.Context, url, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return 0, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", dest, err)
	}

	buffer := make([]byte, copyBufferSize)
	written, copyErr := io.CopyBuffer(out, resp.Body, buffer)
	closeErr := out.Close()

	if copyErr != nil {
		c.logger.Warn("transfer interrupted",
			logging.String("url", url),
			logging.Int64("bytes_written", written),
			logging.Error(copyErr),
		)
		return written, fmt.Errorf("fetch %s: %w", url, copyErr)
	}
	if closeErr != nil {
		return written, fmt.Errorf("write %s: %w", dest, closeErr)
	}

	c.logger.Debug("transfer complete",
		logging.String("url", url),
		logging.String("dest", dest),
		logging.Int64("bytes", written),
	)
	return written, nil
}
