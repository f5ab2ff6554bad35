// Package tools provides interfaces and result helpers for MCP tools
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

// Standard errors for consistent error handling
var (
	ErrInvalidParams = errors.New("invalid parameters")
	ErrInternalError = errors.New("internal server error")
)

// Tool defines the interface for all tools in the system
type Tool interface {
	// Handle returns the underlying MCP tool
	Handle() mcp.Tool

	// ToOpenAITool converts the tool to OpenAI format
	ToOpenAITool() openai.ChatCompletionToolParam

	// Handler processes tool requests and returns responses
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

	// Name returns the name of the tool
	Name() string
}

// BaseTool provides common functionality for all tools
type BaseTool struct {
	name   string
	handle mcp.Tool
}

// NewBaseTool creates a new BaseTool with the given name and handle
func NewBaseTool(name string, handle mcp.Tool) *BaseTool {
	return &BaseTool{
		name:   name,
		handle: handle,
	}
}

// Handle returns the MCP Tool definition
func (b *BaseTool) Handle() mcp.Tool {
	return b.handle
}

// Name returns the name of the tool
func (b *BaseTool) Name() string {
	return b.name
}

/*
ToOpenAITool renders the MCP input schema as an OpenAI function definition,
so the same catalog can be handed to a chat completion request.
*/
func (b *BaseTool) ToOpenAITool() openai.ChatCompletionToolParam {
	properties := map[string]any{}
	for name, schema := range b.handle.InputSchema.Properties {
		properties[name] = schema
	}

	required := append([]string{}, b.handle.InputSchema.Required...)
	sort.Strings(required)

	return openai.ChatCompletionToolParam{
		Type: openai.F(openai.ChatCompletionToolTypeFunction),
		Function: openai.F(openai.FunctionDefinitionParam{
			Name:        openai.String(b.name),
			Description: openai.String(b.handle.Description),
			Parameters: openai.F(openai.FunctionParameters{
				"type":       "object",
				"properties": properties,
				"required":   required,
			}),
		}),
	}
}

// NewErrorResult creates a standard error result
func NewErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

/*
NewOutcomeResult renders a gateway outcome as JSON text. Failures are still
data: the body and status go back to the caller, flagged with IsError.
*/
func NewOutcomeResult(outcome unipile.Outcome) *mcp.CallToolResult {
	var buf bytes.Buffer

	// Message bodies carry HTML that has to reach the caller verbatim.
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(outcome); err != nil {
		return NewErrorResult(errors.Join(ErrInternalError, err))
	}

	result := mcp.NewToolResultText(strings.TrimSuffix(buf.String(), "\n"))
	result.IsError = outcome.Kind() == unipile.KindError

	return result
}

// GetOpenAITools converts a slice of tools to OpenAI format
func GetOpenAITools(tools []Tool) []openai.ChatCompletionToolParam {
	openaiTools := make([]openai.ChatCompletionToolParam, len(tools))
	for i, tool := range tools {
		openaiTools[i] = tool.ToOpenAITool()
	}
	return openaiTools
}
