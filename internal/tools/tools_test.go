package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"eth-mcp-gateway/internal/apperr"
	"eth-mcp-gateway/internal/config"
	"eth-mcp-gateway/internal/models"
	"eth-mcp-gateway/internal/registry"
)

// fakeCaller records upstream calls and plays back canned results.
type fakeCaller struct {
	calls   int
	methods []string
	params  [][]any
	result  json.RawMessage
	err     error
}

func (f *fakeCaller) Call(_ context.Context, method string, params []any) (json.RawMessage, error) {
	f.calls++
	f.methods = append(f.methods, method)
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testConfig() *config.Config {
	return &config.Config{
		UpstreamURL: "http://localhost:8545",
		Port:        3000,
		Transport:   "http",
	}
}

func setup(t *testing.T, fake *fakeCaller, cfg *config.Config) *registry.Registry {
	t.Helper()
	reg := registry.New()
	require.NoError(t, RegisterAll(reg, fake, cfg, testLogger()))
	return reg
}

func callTool(t *testing.T, reg *registry.Registry, name string, args map[string]any) (*models.ToolResult, error) {
	t.Helper()
	def, ok := reg.Resolve(name)
	require.True(t, ok, "tool %q not registered", name)
	return def.Invoke(context.Background(), args)
}

func payloadOf(t *testing.T, res *models.ToolResult) map[string]any {
	t.Helper()
	require.Len(t, res.Content, 1)
	require.Equal(t, "text", res.Content[0].Type)
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].Text), &out))
	return out
}

func TestCatalogRegistersCleanly(t *testing.T) {
	fake := &fakeCaller{result: json.RawMessage(`"0x1"`)}
	reg := setup(t, fake, testConfig())

	require.Equal(t, len(Catalog)+len(Aliases), len(reg.Names()))
	for _, s := range Catalog {
		_, ok := reg.Resolve(s.Name)
		require.True(t, ok, s.Name)
	}
	for _, a := range Aliases {
		_, ok := reg.Resolve(a.Name)
		require.True(t, ok, a.Name)
	}
}

func TestGetBlockNumberDecoration(t *testing.T) {
	fake := &fakeCaller{result: json.RawMessage(`"0x10"`)}
	reg := setup(t, fake, testConfig())

	res, err := callTool(t, reg, "getBlockNumber", map[string]any{})
	require.NoError(t, err)

	payload := payloadOf(t, res)
	require.Equal(t, "0x10", payload["blockNumberHex"])
	require.Equal(t, "16", payload["blockNumberDecimal"])
	require.Equal(t, []string{"eth_blockNumber"}, fake.methods)
	require.Equal(t, []any{}, fake.params[0])
}

func TestQuantityDecorationUnparseableHex(t *testing.T) {
	fake := &fakeCaller{result: json.RawMessage(`"not-hex"`)}
	reg := setup(t, fake, testConfig())

	res, err := callTool(t, reg, "eth_chainId", map[string]any{})
	require.NoError(t, err)
	payload := payloadOf(t, res)
	require.Equal(t, "not-hex", payload["chainIdHex"])
	require.Nil(t, payload["chainIdDecimal"])
}

func TestAliasEquivalence(t *testing.T) {
	for _, pair := range []struct{ alias, canonical string }{
		{"getBalance", "eth_getBalance"},
		{"getBlockNumber", "eth_blockNumber"},
		{"traceTransaction", "debug_traceTransaction"},
		{"txpoolStatus", "txpool_status"},
	} {
		fake := &fakeCaller{result: json.RawMessage(`"0x1"`)}
		reg := setup(t, fake, testConfig())

		args := map[string]any{}
		if pair.alias == "getBalance" {
			args["address"] = "0xabc"
		}
		if pair.alias == "traceTransaction" {
			args["txHash"] = "0xdead"
		}

		resAlias, err := callTool(t, reg, pair.alias, args)
		require.NoError(t, err, pair.alias)
		resCanonical, err := callTool(t, reg, pair.canonical, args)
		require.NoError(t, err, pair.canonical)

		// Same upstream method and params, same output shape.
		require.Equal(t, fake.methods[0], fake.methods[1], pair.alias)
		require.Equal(t, fake.params[0], fake.params[1], pair.alias)
		require.Equal(t, resCanonical, resAlias, pair.alias)
	}
}

func TestGetBalanceDefaultsBlockToLatest(t *testing.T) {
	fake := &fakeCaller{result: json.RawMessage(`"0xde0b6b3a7640000"`)}
	reg := setup(t, fake, testConfig())

	res, err := callTool(t, reg, "eth_getBalance", map[string]any{"address": "0xabc"})
	require.NoError(t, err)
	require.Equal(t, []any{"0xabc", "latest"}, fake.params[0])

	payload := payloadOf(t, res)
	require.Equal(t, "0xde0b6b3a7640000", payload["balanceHex"])
	require.Equal(t, "1000000000000000000", payload["balanceDecimal"])
}

func TestValidationPrecedesInvocation(t *testing.T) {
	fake := &fakeCaller{result: json.RawMessage(`"0x1"`)}
	reg := setup(t, fake, testConfig())

	// Missing required address.
	_, err := callTool(t, reg, "eth_getBalance", map[string]any{})
	require.Error(t, err)
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Zero(t, fake.calls)

	// Wrong type.
	_, err = callTool(t, reg, "eth_getBalance", map[string]any{"address": 42})
	require.Error(t, err)
	require.Zero(t, fake.calls)
}

func TestSendRawTransactionDisabled(t *testing.T) {
	fake := &fakeCaller{result: json.RawMessage(`"0xhash"`)}
	cfg := testConfig() // EnableSendRawTx defaults to false
	reg := setup(t, fake, cfg)

	res, err := callTool(t, reg, "eth_sendRawTransaction", map[string]any{"rawTx": "0x1234"})
	require.NoError(t, err)
	require.Zero(t, fake.calls)

	payload := payloadOf(t, res)
	require.Equal(t, true, payload["skipped"])
	require.NotEmpty(t, payload["reason"])

	// The alias is gated identically.
	_, err = callTool(t, reg, "sendRawTransaction", map[string]any{"rawTx": "0x1234"})
	require.NoError(t, err)
	require.Zero(t, fake.calls)
}

func TestSendRawTransactionEnabled(t *testing.T) {
	fake := &fakeCaller{result: json.RawMessage(`"0xhash"`)}
	cfg := testConfig()
	cfg.EnableSendRawTx = true
	reg := setup(t, fake, cfg)

	_, err := callTool(t, reg, "eth_sendRawTransaction", map[string]any{"rawTx": "0x1234"})
	require.NoError(t, err)
	require.Equal(t, []string{"eth_sendRawTransaction"}, fake.methods)
	require.Equal(t, []any{"0x1234"}, fake.params[0])
}

func TestOpaquePassthroughParams(t *testing.T) {
	fake := &fakeCaller{result: json.RawMessage(`{"gas":21000}`)}
	reg := setup(t, fake, testConfig())

	traceConfig := map[string]any{"tracer": "callTracer", "timeout": "10s"}
	res, err := callTool(t, reg, "debug_traceTransaction", map[string]any{
		"txHash":      "0xdead",
		"traceConfig": traceConfig,
	})
	require.NoError(t, err)
	require.Equal(t, []any{"0xdead", traceConfig}, fake.params[0])

	// Non-quantity tools pass the upstream result through verbatim.
	require.JSONEq(t, `{"gas":21000}`, res.Content[0].Text)
}

func TestTrailingOptionalOmitted(t *testing.T) {
	fake := &fakeCaller{result: json.RawMessage(`{}`)}
	reg := setup(t, fake, testConfig())

	_, err := callTool(t, reg, "debug_traceTransaction", map[string]any{"txHash": "0xdead"})
	require.NoError(t, err)
	require.Equal(t, []any{"0xdead"}, fake.params[0])
}

func TestUpstreamErrorPropagates(t *testing.T) {
	fake := &fakeCaller{err: &apperr.UpstreamError{Method: "eth_blockNumber", Err: apperr.ErrUpstreamTimeout}}
	reg := setup(t, fake, testConfig())

	_, err := callTool(t, reg, "eth_blockNumber", map[string]any{})
	require.ErrorIs(t, err, apperr.ErrUpstreamTimeout)
}

func TestDiscoverySchemas(t *testing.T) {
	fake := &fakeCaller{result: json.RawMessage(`"0x1"`)}
	reg := setup(t, fake, testConfig())

	list := reg.List()
	byName := map[string]int{}
	for i, d := range list {
		require.NotNil(t, d.InputSchema, d.Name)
		require.NotEmpty(t, d.Description, d.Name)
		byName[d.Name] = i
	}

	// Registration order: full catalog first, aliases after.
	require.Less(t, byName["eth_blockNumber"], byName["getBlockNumber"])

	balance := list[byName["eth_getBalance"]]
	require.Contains(t, balance.InputSchema.Properties, "address")
	require.Contains(t, balance.InputSchema.Properties, "block")
	require.Equal(t, []string{"address"}, balance.InputSchema.Required)
}
