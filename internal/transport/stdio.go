package transport

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"eth-mcp-gateway/internal/mcp"
	"eth-mcp-gateway/internal/models"
)

// StdioHandler serves line-delimited JSON-RPC over a reader/writer pair,
// usually stdin and stdout. Responses share the HTTP dispatcher; the HTTP
// status it reports is simply dropped on this transport.
type StdioHandler struct {
	dispatcher *mcp.Dispatcher
	log        *slog.Logger
}

// NewStdioHandler builds a stdio transport over the dispatcher.
func NewStdioHandler(dispatcher *mcp.Dispatcher, log *slog.Logger) *StdioHandler {
	return &StdioHandler{dispatcher: dispatcher, log: log}
}

func (h *StdioHandler) writeResponse(w io.Writer, resp models.JSONRPCResponse) {
	encoded, err := json.Marshal(resp)
	if err != nil {
		h.log.Error("marshaling response", "error", err, "id", resp.ID)
		return
	}
	if _, err := fmt.Fprintln(w, string(encoded)); err != nil {
		h.log.Error("writing response", "error", err)
	}
}

// Start reads one JSON-RPC request per line until EOF or context
// cancellation, writing one response line per request. Blank lines are
// skipped.
func (h *StdioHandler) Start(ctx context.Context, input io.Reader, output io.Writer) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		resp, _ := h.dispatcher.Handle(ctx, line)
		h.writeResponse(output, resp)
	}

	if err := scanner.Err(); err != nil {
		h.log.Error("reading stdio input", "error", err)
		return err
	}
	h.log.Info("stdio input closed")
	return nil
}
