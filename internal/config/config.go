package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/urfave/cli/v2"

	"eth-mcp-gateway/internal/apperr"
)

// DefaultUpstreamTimeout bounds every upstream RPC call.
const DefaultUpstreamTimeout = 8 * time.Second

// Config holds all configurable values for the gateway. It is read once at
// startup and immutable for the process lifetime.
type Config struct {
	// UpstreamURL is the Ethereum JSON-RPC endpoint all tool calls forward to.
	UpstreamURL string
	// Port is the HTTP bind port.
	Port int
	// Transport selects the serving mode, "http" or "stdio".
	Transport string
	// EnableSendRawTx gates whether eth_sendRawTransaction actually
	// forwards; when false the tool returns a skipped notice instead.
	EnableSendRawTx bool
	// UpstreamTimeout bounds each upstream HTTP request.
	UpstreamTimeout time.Duration
}

// Flags declares the CLI surface. Every flag is also bound to an environment
// variable so the gateway can be configured without arguments.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "rpc-url",
			Usage:   "Ethereum JSON-RPC endpoint to forward to (required)",
			EnvVars: []string{"ETH_RPC_URL"},
		},
		&cli.IntFlag{
			Name:    "port",
			Usage:   "HTTP bind port",
			Value:   3000,
			EnvVars: []string{"PORT"},
		},
		&cli.StringFlag{
			Name:    "transport",
			Usage:   "serving mode: http or stdio",
			Value:   "http",
			EnvVars: []string{"TRANSPORT"},
		},
		&cli.BoolFlag{
			Name:    "enable-send-raw-tx",
			Usage:   "allow eth_sendRawTransaction to broadcast to the upstream node",
			EnvVars: []string{"ENABLE_SEND_RAW_TX"},
		},
		&cli.DurationFlag{
			Name:    "rpc-timeout",
			Usage:   "timeout for each upstream RPC call",
			Value:   DefaultUpstreamTimeout,
			EnvVars: []string{"ETH_RPC_TIMEOUT"},
		},
	}
}

// FromCLI collects the parsed flag values into a Config.
func FromCLI(c *cli.Context) *Config {
	return &Config{
		UpstreamURL:     c.String("rpc-url"),
		Port:            c.Int("port"),
		Transport:       c.String("transport"),
		EnableSendRawTx: c.Bool("enable-send-raw-tx"),
		UpstreamTimeout: c.Duration("rpc-timeout"),
	}
}

// Validate checks the configuration and fails fast on anything the process
// cannot run with. The upstream endpoint is checked here, at startup, not
// per call: it cannot change without a restart.
func (c *Config) Validate() error {
	if c.UpstreamURL == "" {
		return apperr.NewConfigError("rpc-url", "upstream JSON-RPC endpoint is required (set --rpc-url or ETH_RPC_URL)")
	}
	u, err := url.Parse(c.UpstreamURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return apperr.NewConfigError("rpc-url", fmt.Sprintf("not a valid URL: %q", c.UpstreamURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return apperr.NewConfigError("rpc-url", fmt.Sprintf("unsupported scheme %q, expected http or https", u.Scheme))
	}
	if c.Port < 1 || c.Port > 65535 {
		return apperr.NewConfigError("port", fmt.Sprintf("must be between 1 and 65535, got %d", c.Port))
	}
	if c.Transport != "http" && c.Transport != "stdio" {
		return apperr.NewConfigError("transport", fmt.Sprintf("must be 'http' or 'stdio', got %q", c.Transport))
	}
	if c.UpstreamTimeout <= 0 {
		return apperr.NewConfigError("rpc-timeout", "must be positive")
	}
	return nil
}
