// Package middleware provides wrappers applied to every registered MCP tool handler.
package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/theapemachine/mcp-server-unipile/pkg/telemetry"
	"github.com/theapemachine/mcp-server-unipile/pkg/tools"
)

// HandlerFunc is the signature mcp-go expects for a tool handler.
type HandlerFunc = server.ToolHandlerFunc

// Observe wraps handler with call logging and latency metrics. A panic inside
// the handler becomes an internal error result.
func Observe(name string, handler HandlerFunc) HandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		start := time.Now()

		defer func() {
			if r := recover(); r != nil {
				log.Error("tool panicked", "tool", name, "panic", r)
				result = tools.NewErrorResult(fmt.Errorf("%w: %v", tools.ErrInternalError, r))
				err = nil
			}

			elapsed := time.Since(start)
			telemetry.ObserveToolDuration(name, elapsed)

			log.Debug("tool call",
				"tool", name,
				"args", len(request.Params.Arguments),
				"duration", elapsed,
				"is_error", result != nil && result.IsError,
				"error", err,
			)
		}()

		return handler(ctx, request)
	}
}
