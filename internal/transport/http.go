package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"eth-mcp-gateway/internal/format"
	"eth-mcp-gateway/internal/mcp"
	"eth-mcp-gateway/internal/registry"
	"eth-mcp-gateway/internal/upstream"
)

const (
	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 60 * time.Second
	shutdownTimeout     = 10 * time.Second

	// maxRequestSize bounds inbound bodies; tool arguments are small.
	maxRequestSize = 5 << 20
)

// HTTPHandler serves the MCP JSON-RPC surface and the REST convenience
// endpoints over HTTP.
type HTTPHandler struct {
	dispatcher *mcp.Dispatcher
	reg        *registry.Registry
	caller     upstream.Caller
	name       string
	port       int
	log        *slog.Logger
}

// NewHTTPHandler builds the HTTP surface for a fully-registered gateway.
func NewHTTPHandler(dispatcher *mcp.Dispatcher, reg *registry.Registry, caller upstream.Caller, name string, port int, log *slog.Logger) *HTTPHandler {
	return &HTTPHandler{
		dispatcher: dispatcher,
		reg:        reg,
		caller:     caller,
		name:       name,
		port:       port,
		log:        log,
	}
}

// Routes builds the handler chain: mux, CORS, request logging.
func (h *HTTPHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/mcp", h.handleMCP)
	mux.HandleFunc("/mcp/", h.handleMCP)
	mux.HandleFunc("/blockNumber", h.handleBlockNumber)
	return h.loggingMiddleware(cors.Default().Handler(mux))
}

func (h *HTTPHandler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.log.Info("incoming request", "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing left to do but log.
		slog.Error("encoding response", "error", err)
	}
}

// handleMCP serves the MCP endpoint: GET/HEAD report health and the tool
// inventory, POST runs one JSON-RPC request through the dispatcher.
func (h *HTTPHandler) handleMCP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": "ok",
			"name":   h.name,
			"port":   h.port,
			"tools":  h.reg.Names(),
		})
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
		defer r.Body.Close()
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		resp, status := h.dispatcher.Handle(r.Context(), body)
		writeJSON(w, status, resp)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleBlockNumber is the REST convenience route: the current block number
// in both hex and decimal.
func (h *HTTPHandler) handleBlockNumber(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw, err := h.caller.Call(r.Context(), "eth_blockNumber", nil)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	var hex string
	if err := json.Unmarshal(raw, &hex); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("unexpected upstream result: %s", raw)})
		return
	}

	payload := map[string]interface{}{"blockNumberHex": hex}
	if dec, ok := format.HexToDecimal(hex); ok {
		payload["blockNumberDecimal"] = dec
	} else {
		payload["blockNumberDecimal"] = nil
	}
	writeJSON(w, http.StatusOK, payload)
}

// Serve runs the HTTP server until the context is cancelled or the listener
// fails, then shuts down gracefully.
func (h *HTTPHandler) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", h.port),
		Handler:      h.Routes(),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		h.log.Info("HTTP server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	h.log.Info("shutting down HTTP server")
	return server.Shutdown(shutdownCtx)
}
