// Package tools declares the gateway's tool catalog as data. Each catalog
// entry names an upstream RPC method, its parameters and an optional result
// decoration; schemas and handlers are derived from the table instead of
// being written per tool.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"

	"eth-mcp-gateway/internal/config"
	"eth-mcp-gateway/internal/format"
	"eth-mcp-gateway/internal/models"
	"eth-mcp-gateway/internal/registry"
	"eth-mcp-gateway/internal/upstream"
)

// ParamType is the JSON type of a tool parameter.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamBoolean ParamType = "boolean"
	ParamInteger ParamType = "integer"
	ParamObject  ParamType = "object"
	ParamArray   ParamType = "array"
	// ParamAny is an opaque passthrough value whose shape is defined by the
	// upstream node's own contract (trace configs and the like). It is not
	// constrained by the schema and is forwarded without interpretation.
	ParamAny ParamType = "any"
)

// Param is one named tool argument. Arguments map onto positional upstream
// RPC params in declaration order.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	// Default is substituted when the argument is absent. An absent optional
	// without a default ends the positional list, so pure optionals must be
	// trailing.
	Default any
}

// Spec is one tool catalog entry.
type Spec struct {
	Name        string
	Description string
	// RPCMethod is the upstream method; empty means same as Name.
	RPCMethod string
	Params    []Param
	// Quantity, when set, declares the upstream result to be a single hex
	// quantity; the payload becomes {"<Quantity>Hex", "<Quantity>Decimal"}.
	Quantity string
	// Gated tools only forward when raw-transaction broadcasting is enabled.
	Gated bool
}

// Alias binds a friendly name to a canonical catalog entry.
type Alias struct {
	Name        string
	Target      string
	Description string
}

func (p Param) schema() *jsonschema.Schema {
	s := &jsonschema.Schema{Description: p.Description}
	if p.Type != ParamAny {
		s.Type = string(p.Type)
	}
	if p.Default != nil {
		if raw, err := json.Marshal(p.Default); err == nil {
			s.Default = raw
		}
	}
	return s
}

// Schema derives the argument schema for a catalog entry.
func (s Spec) Schema() *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema, len(s.Params))
	var required []string
	for _, p := range s.Params {
		props[p.Name] = p.schema()
		if p.Required {
			required = append(required, p.Name)
		}
	}
	out := &jsonschema.Schema{Type: "object", Properties: props}
	if len(required) > 0 {
		out.Required = required
	}
	return out
}

func (s Spec) method() string {
	if s.RPCMethod != "" {
		return s.RPCMethod
	}
	return s.Name
}

// positional maps validated named arguments onto the upstream positional
// parameter list, in table order.
func (s Spec) positional(args map[string]any) []any {
	params := make([]any, 0, len(s.Params))
	for _, p := range s.Params {
		v, ok := args[p.Name]
		if !ok {
			if p.Default != nil {
				v = p.Default
			} else {
				// Absent trailing optional: stop here, the upstream default
				// applies.
				break
			}
		}
		params = append(params, v)
	}
	return params
}

func (s Spec) payload(raw json.RawMessage) (string, error) {
	if s.Quantity == "" {
		if len(raw) == 0 {
			return "null", nil
		}
		return string(raw), nil
	}
	var hex string
	if err := json.Unmarshal(raw, &hex); err != nil {
		return "", fmt.Errorf("%s: expected hex quantity result, got %s", s.method(), raw)
	}
	out := map[string]any{s.Quantity + "Hex": hex}
	if dec, ok := format.HexToDecimal(hex); ok {
		out[s.Quantity+"Decimal"] = dec
	} else {
		out[s.Quantity+"Decimal"] = nil
	}
	encoded, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Handler builds the forwarding handler for a catalog entry.
func (s Spec) Handler(caller upstream.Caller) registry.Handler {
	return func(ctx context.Context, args map[string]any) (*models.ToolResult, error) {
		raw, err := caller.Call(ctx, s.method(), s.positional(args))
		if err != nil {
			return nil, err
		}
		text, err := s.payload(raw)
		if err != nil {
			return nil, err
		}
		return models.TextResult(text), nil
	}
}

// disabledHandler replaces a gated tool's handler when broadcasting is
// switched off: a successful result that says the call was skipped, with no
// upstream traffic.
func disabledHandler(s Spec) registry.Handler {
	notice, _ := json.Marshal(map[string]any{
		"skipped": true,
		"reason":  "raw transaction broadcasting is disabled; set ENABLE_SEND_RAW_TX=true to enable",
		"method":  s.method(),
	})
	return func(ctx context.Context, args map[string]any) (*models.ToolResult, error) {
		return models.TextResult(string(notice)), nil
	}
}

// RegisterAll populates the registry from the catalog: canonical tools
// first, then the alias table, resolved in one pass at the end. A name
// outside the canonical namespaces is logged and skipped; anything else is a
// startup failure.
func RegisterAll(reg *registry.Registry, caller upstream.Caller, cfg *config.Config, log *slog.Logger) error {
	for _, s := range Catalog {
		h := s.Handler(caller)
		if s.Gated && !cfg.EnableSendRawTx {
			h = disabledHandler(s)
		}
		if err := reg.Register(s.Name, s.Description, s.Schema(), h); err != nil {
			if errors.Is(err, registry.ErrPrefix) {
				log.Warn("skipping tool outside canonical namespaces", "tool", s.Name)
				continue
			}
			return err
		}
	}
	for _, a := range Aliases {
		reg.Alias(a.Name, a.Target, a.Description)
	}
	return reg.ResolveAliases()
}
