package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"digger/internal/config"
	"digger/internal/game"
	"digger/internal/logger"
)

type CommandInput struct {
	Command string `json:"command" jsonschema:"Game command to execute"`
	Reset   bool   `json:"reset,omitempty" jsonschema:"Start a new game before executing the command"`
	Seed    *int64 `json:"seed,omitempty" jsonschema:"Seed to use when resetting the game"`
}

type CommandOutput struct {
	Output string       `json:"output" jsonschema:"Narration for the turn"`
	State  game.Summary `json:"state" jsonschema:"Summary of the current game state"`
}

// MCPServer hosts a single session; tool calls are serialised.
type MCPServer struct {
	mu          sync.Mutex
	session     *Session
	world       config.World
	defaultSeed *int64
}

func NewMCPServer(w config.World, seed *int64) *MCPServer {
	return &MCPServer{
		session:     NewSession(w, seed, io.Discard),
		world:       w,
		defaultSeed: seed,
	}
}

// ExecuteCommand plays one turn. A blank command looks around instead of
// spending a turn on "Hm?!".
func ExecuteCommand(s *Session, cmd string) (string, game.Summary) {
	var buf bytes.Buffer
	prevOut := s.Out
	s.Out = &buf
	defer func() {
		s.Out = prevOut
	}()

	if strings.TrimSpace(cmd) == "" {
		wrapWriteLn(s, s.Look())
	} else {
		wrapWriteLn(s, s.Execute(cmd))
	}
	return buf.String(), s.Summary()
}

func (s *MCPServer) HandleCommand(ctx context.Context, _ *mcp.CallToolRequest, input *CommandInput) (*mcp.CallToolResult, *CommandOutput, error) {
	if input == nil {
		input = &CommandInput{}
	}
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Reset || !s.session.IsPlaying {
		seed := s.defaultSeed
		if input.Seed != nil {
			seed = input.Seed
		}
		s.session = NewSession(s.world, seed, io.Discard)
		log.Info("session reset", "requested", input.Reset)
		if strings.TrimSpace(input.Command) == "" {
			output, summary := ExecuteCommand(s.session, "")
			return nil, &CommandOutput{Output: output, State: summary}, nil
		}
	}

	log.Debug("command", "input", input.Command)
	output, summary := ExecuteCommand(s.session, input.Command)
	return nil, &CommandOutput{
		Output: output,
		State:  summary,
	}, nil
}

func RunMCPHTTP(server *MCPServer, addr, path string, origins []string, token string, jsonResponse bool, stateless bool) error {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "digger",
		Version: "v1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "command",
		Description: "Send a command to the Digger game and return the narration plus a state summary.",
	}, server.HandleCommand)

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{
		Stateless:    stateless,
		JSONResponse: jsonResponse,
		Logger:       slog.Default(),
	})

	originSet := map[string]struct{}{}
	for _, origin := range origins {
		originSet[origin] = struct{}{}
	}

	mux := http.NewServeMux()
	mux.Handle(path, guard(handler, originSet, token))

	slog.Info("mcp server listening", "addr", addr, "path", path)
	serverHTTP := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return serverHTTP.ListenAndServe()
}

// guard rejects requests from unknown origins or without the bearer token.
func guard(next http.Handler, origins map[string]struct{}, token string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAllowedOrigin(r, origins) {
			http.Error(w, "Forbidden origin", http.StatusForbidden)
			return
		}
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isAllowedOrigin(r *http.Request, allowed map[string]struct{}) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	_, ok := allowed[origin]
	return ok
}
