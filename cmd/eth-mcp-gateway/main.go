package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"eth-mcp-gateway/internal/config"
	"eth-mcp-gateway/internal/mcp"
	"eth-mcp-gateway/internal/models"
	"eth-mcp-gateway/internal/registry"
	"eth-mcp-gateway/internal/tools"
	"eth-mcp-gateway/internal/transport"
	"eth-mcp-gateway/internal/upstream"
)

const (
	serverName    = "eth-mcp-gateway"
	serverVersion = "1.0.0"
)

func main() {
	app := &cli.App{
		Name:    serverName,
		Version: serverVersion,
		Usage:   "expose Ethereum JSON-RPC methods as schema-validated MCP tools",
		Flags:   config.Flags(),
		Action:  run,
	}
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.FromCLI(c)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Log to stderr on every transport: on stdio, stdout carries only
	// JSON-RPC responses.
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	client := upstream.NewClient(cfg.UpstreamURL, cfg.UpstreamTimeout)

	// Two-phase startup: canonical tools first, then alias resolution. Any
	// dangling alias fails here, before a transport starts serving.
	reg := registry.New()
	if err := tools.RegisterAll(reg, client, cfg, log); err != nil {
		return fmt.Errorf("tool registration: %w", err)
	}
	log.Info("tool registry ready",
		"tools", len(reg.Names()),
		"transport", cfg.Transport,
		"upstream", cfg.UpstreamURL,
		"send_raw_tx", cfg.EnableSendRawTx,
	)

	dispatcher := mcp.NewDispatcher(reg, models.ServerInfo{Name: serverName, Version: serverVersion}, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Transport {
	case "stdio":
		return transport.NewStdioHandler(dispatcher, log).Start(ctx, os.Stdin, os.Stdout)
	default:
		h := transport.NewHTTPHandler(dispatcher, reg, client, serverName, cfg.Port, log)
		return h.Serve(ctx)
	}
}
