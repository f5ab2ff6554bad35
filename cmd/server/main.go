// Command server is the main entry point for the Unipile MCP Server
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/theapemachine/mcp-server-unipile/pkg/config"
	"github.com/theapemachine/mcp-server-unipile/pkg/telemetry"
	"github.com/theapemachine/mcp-server-unipile/pkg/tools"
	"github.com/theapemachine/mcp-server-unipile/pkg/tools/catalog"
	"github.com/theapemachine/mcp-server-unipile/pkg/tools/middleware"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

func main() {
	openaiTools := flag.Bool("openai-tools", false, "print the catalog as OpenAI tool definitions and exit")
	list := flag.Bool("list", false, "print the tool names with their HTTP verb and path and exit")
	flag.Parse()

	// stdout belongs to the MCP stdio transport.
	log.SetOutput(os.Stderr)
	stdlog.SetFlags(0)
	stdlog.SetOutput(&logWriter{})

	cfg := config.Load()
	setLevel(cfg.Log.Level)

	if *list {
		printCatalog()
		return
	}

	if *openaiTools {
		// Definitions only, the tools are never invoked.
		if err := json.NewEncoder(os.Stdout).Encode(tools.GetOpenAITools(catalog.New(nil, catalog.Options{}))); err != nil {
			log.Fatal("cannot encode tools", "error", err)
		}
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", "error", err)
	}

	client, err := unipile.NewClient(cfg.Gateway())
	if err != nil {
		log.Fatal("cannot create gateway", "error", err)
	}

	registry := NewToolRegistry(newServer())
	for _, tool := range catalog.New(client, catalog.Options{
		BaseURL:           cfg.Unipile.BaseURL,
		LinkedInAccountID: cfg.Unipile.LinkedInAccountID,
		EmailAccountID:    cfg.Unipile.EmailAccountID,
	}) {
		registry.RegisterTool(tool)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Addr != "" {
		go func() {
			if err := telemetry.Serve(ctx, cfg.Metrics.Addr); err != nil {
				log.Error("metrics server stopped", "error", err)
			}
		}()
	}

	log.Info("server started", "tools", len(registry.Tools()), "base_url", cfg.Unipile.BaseURL)

	if err := server.ServeStdio(registry.server); err != nil {
		log.Fatal("server error", "error", err)
	}

	log.Info("server shutdown complete")
}

func newServer() *server.MCPServer {
	return server.NewMCPServer(
		"Unipile MCP Server",
		"1.0.0",
		server.WithResourceCapabilities(false, false),
		server.WithLogging(),
	)
}

func setLevel(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.Warn("unknown log level, using info", "level", level)
		parsed = log.InfoLevel
	}

	log.SetLevel(parsed)
}

func printCatalog() {
	for _, d := range catalog.Descriptors() {
		fmt.Printf("%-28s %-6s %s\n", d.Name, d.Method, d.Path)
	}
}

// ToolRegistry manages tool registration and lifecycle
type ToolRegistry struct {
	server *server.MCPServer
	tools  map[string]tools.Tool
	order  []string
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(mcpServer *server.MCPServer) *ToolRegistry {
	return &ToolRegistry{
		server: mcpServer,
		tools:  make(map[string]tools.Tool),
	}
}

// RegisterTool registers a tool with the server
func (r *ToolRegistry) RegisterTool(tool tools.Tool) {
	if _, exists := r.tools[tool.Name()]; exists {
		log.Fatal("duplicate tool", "name", tool.Name())
	}

	r.tools[tool.Name()] = tool
	r.order = append(r.order, tool.Name())
	r.server.AddTool(tool.Handle(), middleware.Observe(tool.Name(), tool.Handler))
}

// Tools returns the registered tools in registration order.
func (r *ToolRegistry) Tools() []tools.Tool {
	out := make([]tools.Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}

	return out
}

// logWriter forwards standard library log output from dependencies to the
// structured logger at debug level.
type logWriter struct{}

// Write implements io.Writer
func (w *logWriter) Write(bytes []byte) (int, error) {
	log.Debug(strings.TrimSpace(string(bytes)))
	return len(bytes), nil
}
