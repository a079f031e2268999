// Package apperr defines the gateway's error taxonomy and its mapping onto
// JSON-RPC error codes and HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"eth-mcp-gateway/internal/models"
)

// JSON-RPC error codes (per the JSON-RPC 2.0 specification).
const (
	CodeParseError     = -32700 // invalid JSON was received by the server
	CodeInvalidRequest = -32600 // the JSON sent is not a valid Request object
	CodeMethodNotFound = -32601 // the method or tool does not exist
	CodeInvalidParams  = -32602 // invalid method parameter(s)
	CodeInternalError  = -32603 // internal JSON-RPC error
	CodeExecutionError = -32000 // tool execution failed (validation or upstream)
)

// ConfigError is a startup-time configuration failure. It is the only error
// class permitted to terminate the process.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// NewConfigError builds a ConfigError for the named configuration field.
func NewConfigError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}

// ErrUpstreamTimeout marks an upstream call that did not complete within the
// configured timeout. It is always wrapped inside an UpstreamError.
var ErrUpstreamTimeout = errors.New("upstream request timed out")

// UpstreamError is a failure while forwarding a call to the upstream node:
// transport failure, timeout, non-2xx status, or an RPC-level error object
// in the response body.
type UpstreamError struct {
	Method string // upstream RPC method being called
	Status int    // HTTP status, 0 when the request never completed
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream %s: status %d: %v", e.Method, e.Status, e.Err)
	}
	return fmt.Sprintf("upstream %s: %v", e.Method, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ValidationError reports tool arguments that failed schema validation.
// Arguments that fail validation never reach a handler.
type ValidationError struct {
	Tool string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: %v", e.Tool, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewParseError builds the envelope error for malformed inbound JSON.
func NewParseError(details string) *models.JSONRPCError {
	return &models.JSONRPCError{Code: CodeParseError, Message: "Parse error: " + details}
}

// NewInvalidRequest builds the envelope error for a request that is not a
// valid JSON-RPC request object (e.g. an empty body).
func NewInvalidRequest(details string) *models.JSONRPCError {
	return &models.JSONRPCError{Code: CodeInvalidRequest, Message: "Invalid Request: " + details}
}

// NewMethodNotFound builds the envelope error for an unknown JSON-RPC method.
func NewMethodNotFound(method string) *models.JSONRPCError {
	return &models.JSONRPCError{Code: CodeMethodNotFound, Message: "Method not found: " + method}
}

// NewToolNotFound builds the envelope error for a tools/call naming a tool
// the registry cannot resolve. The caller-supplied name is echoed back for
// diagnostics.
func NewToolNotFound(name string) *models.JSONRPCError {
	return &models.JSONRPCError{Code: CodeMethodNotFound, Message: fmt.Sprintf("Tool not found: %q", name)}
}

// NewInvalidParams builds the envelope error for missing or malformed
// tools/call parameters.
func NewInvalidParams(details string) *models.JSONRPCError {
	return &models.JSONRPCError{Code: CodeInvalidParams, Message: "Invalid params: " + details}
}

// NewExecutionError wraps any failure raised inside a tool invocation.
// Schema validation and upstream failures share this channel.
func NewExecutionError(err error) *models.JSONRPCError {
	return &models.JSONRPCError{Code: CodeExecutionError, Message: err.Error()}
}

// HTTPStatusForCode maps a JSON-RPC error code to the HTTP status the
// transport should respond with. Method-not-found maps to 404 for unknown
// tools; unknown protocol methods keep HTTP 200, which the dispatcher sets
// explicitly instead of consulting this mapping.
func HTTPStatusForCode(code int) int {
	switch code {
	case CodeParseError, CodeInvalidRequest, CodeInvalidParams:
		return http.StatusBadRequest
	case CodeMethodNotFound:
		return http.StatusNotFound
	case CodeExecutionError, CodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
