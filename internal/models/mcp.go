package models

import "github.com/google/jsonschema-go/jsonschema"

// ProtocolVersion is the MCP protocol revision this server speaks.
const ProtocolVersion = "2024-11-05"

// ToolContent is a single typed content block inside a tool result.
type ToolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the payload returned by a successful tools/call.
type ToolResult struct {
	Content []ToolContent `json:"content"`
}

// TextResult wraps a single text block into a ToolResult.
func TextResult(text string) *ToolResult {
	return &ToolResult{Content: []ToolContent{{Type: "text", Text: text}}}
}

// ToolDescriptor is one entry of the tools/list response.
type ToolDescriptor struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// ToolListResult is the result of a tools/list request.
type ToolListResult struct {
	Tools []ToolDescriptor `json:"tools"`
}

// ServerInfo identifies this server in the initialize handshake.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ToolCapability describes one tool inside the initialize capability map.
type ToolCapability struct {
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// RootsCapability reports whether the server notifies about root changes.
// This server never does.
type RootsCapability struct {
	ListChanged bool `json:"listChanged"`
}

// Capabilities is the capability document returned by initialize.
type Capabilities struct {
	Tools map[string]ToolCapability `json:"tools"`
	Roots RootsCapability           `json:"roots"`
}

// InitializeResult is the result of an initialize request.
type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
	Capabilities    Capabilities `json:"capabilities"`
}

// ToolCallParams are the parameters of a tools/call request.
type ToolCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}
