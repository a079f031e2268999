package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"eth-mcp-gateway/internal/config"
	"eth-mcp-gateway/internal/mcp"
	"eth-mcp-gateway/internal/models"
	"eth-mcp-gateway/internal/registry"
	"eth-mcp-gateway/internal/tools"
)

type fakeCaller struct {
	calls  int
	result json.RawMessage
	err    error
}

func (f *fakeCaller) Call(_ context.Context, method string, params []any) (json.RawMessage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestServer(t *testing.T, fake *fakeCaller) *httptest.Server {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	cfg := &config.Config{UpstreamURL: "http://localhost:8545", Port: 3000, Transport: "http"}

	reg := registry.New()
	require.NoError(t, tools.RegisterAll(reg, fake, cfg, log))

	dispatcher := mcp.NewDispatcher(reg, models.ServerInfo{Name: "eth-mcp-gateway", Version: "1.0.0"}, log)
	h := NewHTTPHandler(dispatcher, reg, fake, "eth-mcp-gateway", cfg.Port, log)

	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func TestHealthEndpoint(t *testing.T) {
	fake := &fakeCaller{result: json.RawMessage(`"0x1"`)}
	srv := newTestServer(t, fake)

	for _, path := range []string{"/mcp", "/mcp/"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var health struct {
			Status string   `json:"status"`
			Name   string   `json:"name"`
			Port   int      `json:"port"`
			Tools  []string `json:"tools"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		resp.Body.Close()

		require.Equal(t, "ok", health.Status)
		require.Equal(t, "eth-mcp-gateway", health.Name)
		require.Equal(t, 3000, health.Port)
		require.Contains(t, health.Tools, "eth_blockNumber")
		require.Contains(t, health.Tools, "getBlockNumber")
	}
}

func TestHeadHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, &fakeCaller{result: json.RawMessage(`"0x1"`)})
	req, err := http.NewRequest(http.MethodHead, srv.URL+"/mcp", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEmptyBodyIsInvalidRequest(t *testing.T) {
	srv := newTestServer(t, &fakeCaller{})
	resp, decoded := postJSON(t, srv.URL+"/mcp", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errObj := decoded["error"].(map[string]any)
	require.Equal(t, float64(-32600), errObj["code"])
	require.Nil(t, decoded["id"])
}

func TestMalformedJSONIsParseError(t *testing.T) {
	srv := newTestServer(t, &fakeCaller{})
	resp, decoded := postJSON(t, srv.URL+"/mcp", `{"jsonrpc":`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errObj := decoded["error"].(map[string]any)
	require.Equal(t, float64(-32700), errObj["code"])
}

func TestUnknownMethodReturns200(t *testing.T) {
	srv := newTestServer(t, &fakeCaller{})
	resp, decoded := postJSON(t, srv.URL+"/mcp", `{"jsonrpc":"2.0","id":1,"method":"bogus"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	errObj := decoded["error"].(map[string]any)
	require.Equal(t, float64(-32601), errObj["code"])
}

func TestUnknownToolReturns404(t *testing.T) {
	srv := newTestServer(t, &fakeCaller{})
	resp, decoded := postJSON(t, srv.URL+"/mcp", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"doesNotExist","arguments":{}}}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	errObj := decoded["error"].(map[string]any)
	require.Equal(t, float64(-32601), errObj["code"])
	require.Contains(t, errObj["message"], "doesNotExist")
}

func TestToolCallEndToEnd(t *testing.T) {
	fake := &fakeCaller{result: json.RawMessage(`"0x10"`)}
	srv := newTestServer(t, fake)

	resp, decoded := postJSON(t, srv.URL+"/mcp", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"getBlockNumber","arguments":{}}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, fake.calls)

	result := decoded["result"].(map[string]any)
	content := result["content"].([]any)
	require.Len(t, content, 1)
	text := content[0].(map[string]any)["text"].(string)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	require.Equal(t, "0x10", payload["blockNumberHex"])
	require.Equal(t, "16", payload["blockNumberDecimal"])
}

func TestToolCallUpstreamFailureReturns500(t *testing.T) {
	fake := &fakeCaller{err: errors.New("connection refused")}
	srv := newTestServer(t, fake)

	resp, decoded := postJSON(t, srv.URL+"/mcp", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"eth_blockNumber","arguments":{}}}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	errObj := decoded["error"].(map[string]any)
	require.Equal(t, float64(-32000), errObj["code"])
	require.Contains(t, errObj["message"], "connection refused")
}

func TestToolsListEndpoint(t *testing.T) {
	srv := newTestServer(t, &fakeCaller{})
	resp, decoded := postJSON(t, srv.URL+"/mcp", `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decoded["result"].(map[string]any)
	toolList := result["tools"].([]any)
	require.Equal(t, len(tools.Catalog)+len(tools.Aliases), len(toolList))

	first := toolList[0].(map[string]any)
	require.Equal(t, "eth_blockNumber", first["name"])
	require.Contains(t, first, "inputSchema")
}

func TestBlockNumberREST(t *testing.T) {
	fake := &fakeCaller{result: json.RawMessage(`"0x10"`)}
	srv := newTestServer(t, fake)

	resp, err := http.Get(srv.URL + "/blockNumber")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "0x10", payload["blockNumberHex"])
	require.Equal(t, "16", payload["blockNumberDecimal"])
}

func TestBlockNumberRESTUpstreamFailure(t *testing.T) {
	fake := &fakeCaller{err: errors.New("upstream down")}
	srv := newTestServer(t, fake)

	resp, err := http.Get(srv.URL + "/blockNumber")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Contains(t, payload["error"], "upstream down")
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, &fakeCaller{})

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/mcp", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/blockNumber", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServerSurvivesFailures(t *testing.T) {
	// A failed invocation must not poison subsequent requests.
	fake := &fakeCaller{err: errors.New("boom")}
	srv := newTestServer(t, fake)

	_, _ = postJSON(t, srv.URL+"/mcp", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"eth_blockNumber","arguments":{}}}`)

	fake.err = nil
	fake.result = json.RawMessage(`"0x2a"`)
	resp, decoded := postJSON(t, srv.URL+"/mcp", `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"eth_blockNumber","arguments":{}}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, decoded, "result")
}
