package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
)

// Listen serves newline delimited JSON-RPC messages from in and writes the responses to out.
// Messages are handled one at a time, in the order received.
// It returns nil when in is closed, or the context error when ctx is done.
func (s *Server) Listen(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	enc := json.NewEncoder(out)

	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		for {
			line, err := reader.ReadBytes('\n')
			if len(bytes.TrimSpace(line)) > 0 {
				select {
				case lines <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- errors.Wrap(err, "failed to read message")
				}
				return
			}
		}
	}()

	logger.KV(xlog.INFO, "status", "listening", "transport", "stdio")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
				}
				logger.KV(xlog.INFO, "status", "closed", "transport", "stdio")
				return nil
			}

			resp := s.HandleMessage(ctx, bytes.TrimSpace(line))
			if resp == nil {
				continue
			}
			if err := enc.Encode(resp); err != nil {
				return errors.Wrap(err, "failed to write response")
			}
		}
	}
}
