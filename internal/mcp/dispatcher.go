// Package mcp routes JSON-RPC requests on the MCP surface: initialize,
// tools/list and tools/call. Each request is one complete run through the
// dispatcher with no state left behind.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"eth-mcp-gateway/internal/apperr"
	"eth-mcp-gateway/internal/models"
	"eth-mcp-gateway/internal/registry"
)

// Dispatcher resolves JSON-RPC methods against the tool registry and wraps
// every outcome, success or failure, into a response envelope.
type Dispatcher struct {
	reg  *registry.Registry
	info models.ServerInfo
	log  *slog.Logger
}

// NewDispatcher builds a dispatcher over a fully-registered registry.
func NewDispatcher(reg *registry.Registry, info models.ServerInfo, log *slog.Logger) *Dispatcher {
	return &Dispatcher{reg: reg, info: info, log: log}
}

// Handle processes one raw JSON-RPC request body and returns the response
// envelope together with the HTTP status the transport should use. No
// failure inside a tool call escapes as anything but an error envelope.
func (d *Dispatcher) Handle(ctx context.Context, body []byte) (models.JSONRPCResponse, int) {
	if len(bytes.TrimSpace(body)) == 0 {
		return errorResponse(nil, apperr.NewInvalidRequest("empty request body"))
	}

	var req models.JSONRPCRequest
	if err := json.Unmarshal(body, &req); err != nil {
		// The id cannot be recovered from malformed JSON.
		return errorResponse(nil, apperr.NewParseError(err.Error()))
	}

	switch req.Method {
	case "initialize":
		return models.NewResult(req.ID, models.InitializeResult{
			ProtocolVersion: models.ProtocolVersion,
			ServerInfo:      d.info,
			Capabilities: models.Capabilities{
				Tools: d.reg.Capabilities(),
				Roots: models.RootsCapability{ListChanged: false},
			},
		}), http.StatusOK

	case "tools/list":
		return models.NewResult(req.ID, models.ToolListResult{Tools: d.reg.List()}), http.StatusOK

	case "tools/call":
		return d.handleToolCall(ctx, req)

	default:
		// Unknown but well-formed methods are not transport failures;
		// passive clients probe for capabilities and must get HTTP 200.
		return models.NewError(req.ID, apperr.NewMethodNotFound(req.Method)), http.StatusOK
	}
}

// handleToolCall resolves the tool name, validates the arguments against its
// schema and only then invokes the handler. The order matters: invalid input
// must never reach the upstream node.
func (d *Dispatcher) handleToolCall(ctx context.Context, req models.JSONRPCRequest) (models.JSONRPCResponse, int) {
	if len(req.Params) == 0 || bytes.Equal(bytes.TrimSpace(req.Params), []byte("null")) {
		return errorResponse(req.ID, apperr.NewInvalidParams("tools/call requires params"))
	}

	var params models.ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, apperr.NewInvalidParams(err.Error()))
	}

	def, ok := d.reg.Resolve(params.Name)
	if !ok {
		d.log.Warn("tool not found", "tool", params.Name)
		return errorResponse(req.ID, apperr.NewToolNotFound(params.Name))
	}

	args := params.Arguments
	if args == nil {
		args = map[string]any{}
	}

	result, err := def.Invoke(ctx, args)
	if err != nil {
		d.log.Warn("tool invocation failed", "tool", params.Name, "error", err)
		return errorResponse(req.ID, apperr.NewExecutionError(err))
	}
	return models.NewResult(req.ID, result), http.StatusOK
}

// errorResponse pairs an error envelope with its HTTP status.
func errorResponse(id interface{}, rpcErr *models.JSONRPCError) (models.JSONRPCResponse, int) {
	return models.NewError(id, rpcErr), apperr.HTTPStatusForCode(rpcErr.Code)
}
