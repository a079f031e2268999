// Package registry holds the mapping from tool name to schema, handler and
// discovery metadata. Registration happens once at startup in two phases:
// canonical tools first, then alias resolution. After that the registry is
// read-only, so concurrent readers need no synchronization.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"eth-mcp-gateway/internal/apperr"
	"eth-mcp-gateway/internal/models"
)

// Handler executes a tool against already-validated arguments.
type Handler func(ctx context.Context, args map[string]any) (*models.ToolResult, error)

// ErrPrefix marks a canonical name outside the allowed prefix set. Callers
// treat it as a skip, not a fatal registration failure.
var ErrPrefix = errors.New("tool name does not match the canonical prefix set")

// ErrDuplicate marks a name that is already registered. Silent overwrite is
// a latent bug source, so this is a hard startup error.
var ErrDuplicate = errors.New("tool name already registered")

// canonicalPrefixes are the only namespaces that may self-register. Friendly
// names enter the registry as aliases.
var canonicalPrefixes = []string{"eth_", "admin_", "debug_", "txpool_"}

// Definition is one registered tool: immutable after startup. Aliases share
// the target's schema and handler, so there is exactly one behavioral
// definition per group of canonical name and aliases.
type Definition struct {
	Name        string
	Description string
	// Schema is the JSON-Schema document served for discovery.
	Schema *jsonschema.Schema
	// resolved is the compiled form of Schema used for validation.
	resolved *jsonschema.Resolved
	Handler  Handler
}

// ValidateArgs checks caller-supplied arguments against the declared schema.
func (d *Definition) ValidateArgs(args map[string]any) error {
	if args == nil {
		args = map[string]any{}
	}
	if err := d.resolved.Validate(args); err != nil {
		return &apperr.ValidationError{Tool: d.Name, Err: err}
	}
	return nil
}

// Invoke validates the arguments and, only then, runs the handler.
func (d *Definition) Invoke(ctx context.Context, args map[string]any) (*models.ToolResult, error) {
	if err := d.ValidateArgs(args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return d.Handler(ctx, args)
}

type pendingAlias struct {
	name        string
	target      string
	description string
}

// Registry maps tool names (canonical and alias alike) to definitions.
type Registry struct {
	defs    map[string]*Definition
	order   []string
	pending []pendingAlias
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

func hasCanonicalPrefix(name string) bool {
	for _, p := range canonicalPrefixes {
		if strings.HasPrefix(name, p) && len(name) > len(p) {
			return true
		}
	}
	return false
}

// Register adds a canonical tool. A nil schema means the tool takes no
// arguments. Names outside the eth_/admin_/debug_/txpool_ namespaces are
// rejected with ErrPrefix; duplicates with ErrDuplicate.
func (r *Registry) Register(name, description string, schema *jsonschema.Schema, handler Handler) error {
	if name == "" {
		return fmt.Errorf("register: empty tool name")
	}
	if !hasCanonicalPrefix(name) {
		return fmt.Errorf("register %q: %w", name, ErrPrefix)
	}
	if _, exists := r.defs[name]; exists {
		return fmt.Errorf("register %q: %w", name, ErrDuplicate)
	}
	if handler == nil {
		return fmt.Errorf("register %q: nil handler", name)
	}
	if schema == nil {
		schema = &jsonschema.Schema{Type: "object", Properties: map[string]*jsonschema.Schema{}}
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("register %q: resolve schema: %w", name, err)
	}
	r.defs[name] = &Definition{
		Name:        name,
		Description: description,
		Schema:      schema,
		resolved:    resolved,
		Handler:     handler,
	}
	r.order = append(r.order, name)
	return nil
}

// Alias records an alternate name for an already (or soon to be) registered
// tool. Nothing is bound here; ResolveAliases performs the binding after all
// canonical registrations so declaration order cannot create dangling
// references silently. An empty description inherits the target's.
func (r *Registry) Alias(name, target, description string) {
	r.pending = append(r.pending, pendingAlias{name: name, target: target, description: description})
}

// ResolveAliases binds every recorded alias to its target definition. Any
// dangling or colliding alias makes the whole pass fail, listing each
// offender, so configuration bugs surface at startup rather than as missing
// tools at runtime.
func (r *Registry) ResolveAliases() error {
	var bad []string
	for _, a := range r.pending {
		target, ok := r.defs[a.target]
		if !ok {
			bad = append(bad, fmt.Sprintf("%s -> %s (target not registered)", a.name, a.target))
			continue
		}
		if _, exists := r.defs[a.name]; exists {
			bad = append(bad, fmt.Sprintf("%s -> %s (alias name already taken)", a.name, a.target))
			continue
		}
		desc := a.description
		if desc == "" {
			desc = target.Description
		}
		// Schema, resolved and handler are shared with the target; only the
		// listing metadata differs.
		r.defs[a.name] = &Definition{
			Name:        a.name,
			Description: desc,
			Schema:      target.Schema,
			resolved:    target.resolved,
			Handler:     target.Handler,
		}
		r.order = append(r.order, a.name)
	}
	r.pending = nil
	if len(bad) > 0 {
		return fmt.Errorf("unresolvable aliases: %s", strings.Join(bad, "; "))
	}
	return nil
}

// Resolve looks up a definition by canonical name or alias.
func (r *Registry) Resolve(name string) (*Definition, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// List returns discovery descriptors in registration order. The order is
// stable but carries no meaning beyond display.
func (r *Registry) List() []models.ToolDescriptor {
	out := make([]models.ToolDescriptor, 0, len(r.order))
	for _, name := range r.order {
		d := r.defs[name]
		out = append(out, models.ToolDescriptor{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.Schema,
		})
	}
	return out
}

// Names returns every registered name, canonical and alias, in registration
// order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Capabilities builds the tool capability map for the initialize handshake.
func (r *Registry) Capabilities() map[string]models.ToolCapability {
	out := make(map[string]models.ToolCapability, len(r.order))
	for _, name := range r.order {
		d := r.defs[name]
		out[name] = models.ToolCapability{Description: d.Description, InputSchema: d.Schema}
	}
	return out
}
