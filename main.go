package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"digger/internal/config"
	"digger/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	headless := flag.Bool("headless", false, "Run in headless mode (no raw terminal input)")
	worldFile := flag.String("world", cfg.WorldFile, "Path to the world file")
	seedFlag := flag.Int64("seed", cfg.Seed, "Deterministic seed for dug rooms (negative picks one)")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	mcpHTTP := flag.Bool("mcp-http", false, "Run MCP Streamable HTTP server")
	mcpAddr := flag.String("mcp-addr", "127.0.0.1:8765", "MCP listen address")
	mcpPath := flag.String("mcp-path", "/mcp", "MCP endpoint path")
	mcpToken := flag.String("mcp-token", "", "Bearer token for MCP requests (optional)")
	mcpJSON := flag.Bool("mcp-json-response", false, "Force JSON responses instead of SSE")
	mcpStateless := flag.Bool("mcp-stateless", false, "Run MCP server in stateless mode (no sessions/SSE)")
	var origins originList
	flag.Var(&origins, "mcp-origin", "Allowed Origin for MCP requests (repeatable)")

	flag.Usage = func() {
		fmt.Printf("Usage: digger [options]\n\n")
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger.Init(os.Stderr, logger.Config{
		Level:       *logLevel,
		Format:      cfg.LogFormat,
		ServiceName: "digger",
		Version:     "dev",
		Environment: cfg.Environment,
	})

	world, err := config.LoadWorld(*worldFile)
	if err != nil {
		slog.Error("failed to load world", "path", *worldFile, "error", err)
		os.Exit(1)
	}

	cfg.Seed = *seedFlag
	var seed *int64
	if cfg.HasSeed() {
		seed = &cfg.Seed
	}

	if *mcpHTTP {
		if len(origins) == 0 {
			origins = append(origins, "http://localhost", "http://127.0.0.1")
		}
		server := NewMCPServer(world, seed)
		if err := RunMCPHTTP(server, *mcpAddr, *mcpPath, origins, *mcpToken, *mcpJSON, *mcpStateless); err != nil {
			slog.Error("mcp server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	s := NewSession(world, seed, os.Stdout)
	s.IsHeadless = *headless
	runLoop(s)
}
