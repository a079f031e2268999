// Package upstream issues single-shot JSON-RPC calls to the configured
// Ethereum node. Transport failures, timeouts, non-2xx statuses and
// RPC-level error objects are all normalized into apperr.UpstreamError.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"eth-mcp-gateway/internal/apperr"
)

// Caller is the invocation surface tool handlers depend on. Tests substitute
// a counting fake.
type Caller interface {
	Call(ctx context.Context, method string, params []any) (json.RawMessage, error)
}

// request is the outbound JSON-RPC envelope. The id here is unrelated to any
// inbound request id; it only disambiguates calls on the upstream wire.
type request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int64  `json:"id"`
}

// response is the inbound JSON-RPC envelope from the node.
type response struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Client forwards JSON-RPC calls to one endpoint with a fixed timeout.
type Client struct {
	endpoint string
	timeout  time.Duration
	httpc    *http.Client
}

// NewClient builds a Client for the given endpoint. The timeout bounds each
// call end to end.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		timeout:  timeout,
		httpc:    &http.Client{},
	}
}

// Call issues exactly one HTTP POST to the upstream node and returns the raw
// result. Params are forwarded verbatim; a nil slice is sent as [].
//
// The timeout runs on its own context derived from Background rather than
// the caller's: a client that disconnects mid-call must not leak the
// outbound request past its deadline, and the deadline must fire even so.
func (c *Client) Call(_ context.Context, method string, params []any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      time.Now().UnixMilli(),
	})
	if err != nil {
		return nil, &apperr.UpstreamError{Method: method, Err: fmt.Errorf("encode request: %w", err)}
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &apperr.UpstreamError{Method: method, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return nil, &apperr.UpstreamError{Method: method, Err: fmt.Errorf("%w after %s", apperr.ErrUpstreamTimeout, c.timeout)}
		}
		return nil, &apperr.UpstreamError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperr.UpstreamError{
			Method: method,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperr.UpstreamError{Method: method, Err: fmt.Errorf("read response: %w", err)}
	}

	var decoded response
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &apperr.UpstreamError{Method: method, Err: fmt.Errorf("decode response: %w", err)}
	}
	if decoded.Error != nil {
		return nil, &apperr.UpstreamError{Method: method, Err: decoded.Error}
	}
	return decoded.Result, nil
}
