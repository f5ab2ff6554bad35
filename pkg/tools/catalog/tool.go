// Package catalog declares every Unipile tool as a Descriptor and turns each
// one into an MCP tool backed by the gateway.
package catalog

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-unipile/pkg/telemetry"
	"github.com/theapemachine/mcp-server-unipile/pkg/tools"
	"github.com/theapemachine/mcp-server-unipile/pkg/tools/utils"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

// Gateway is the single request primitive every tool routes through.
type Gateway interface {
	Request(ctx context.Context, call unipile.Call) (unipile.Outcome, error)
}

// Tool runs one Descriptor against the gateway.
type Tool struct {
	*tools.BaseTool
	descriptor Descriptor
	gateway    Gateway
	options    Options
}

// NewTool binds descriptor to gateway.
func NewTool(descriptor Descriptor, gateway Gateway, options Options) *Tool {
	return &Tool{
		BaseTool:   tools.NewBaseTool(descriptor.Name, descriptor.handle()),
		descriptor: descriptor,
		gateway:    gateway,
		options:    options,
	}
}

// Descriptor returns the definition the tool was built from.
func (tool *Tool) Descriptor() Descriptor {
	return tool.descriptor
}

/*
Handler assembles the call and returns the gateway outcome unchanged. Input
errors come back as a local error outcome without touching the network; only
transport failures are returned as a Go error.
*/
func (tool *Tool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	call, err := tool.descriptor.Assemble(utils.ArgsFrom(request), tool.options)
	if err != nil {
		log.Warn("rejected tool call", "tool", tool.Name(), "error", err)
		telemetry.ObserveTool(tool.Name(), "rejected")
		return tools.NewOutcomeResult(unipile.LocalError(rejection(err))), nil
	}

	outcome, err := tool.gateway.Request(ctx, call)
	if err != nil {
		telemetry.ObserveTool(tool.Name(), "transport_error")
		return nil, err
	}

	telemetry.ObserveTool(tool.Name(), string(outcome.Kind()))

	return tools.NewOutcomeResult(outcome), nil
}

// New builds a tool for every descriptor in the catalog.
func New(gateway Gateway, options Options) []tools.Tool {
	descriptors := Descriptors()
	out := make([]tools.Tool, 0, len(descriptors))

	for _, descriptor := range descriptors {
		out = append(out, NewTool(descriptor, gateway, options))
	}

	return out
}

// Descriptors lists the catalog in registration order.
func Descriptors() []Descriptor {
	groups := [][]Descriptor{
		accountDescriptors,
		messagingDescriptors,
		attendeeDescriptors,
		folderDescriptors,
		emailDescriptors,
		calendarDescriptors,
		searchDescriptors,
		profileDescriptors,
		invitationDescriptors,
		inmailDescriptors,
		postDescriptors,
		jobDescriptors,
		webhookDescriptors,
		advancedDescriptors,
	}

	var out []Descriptor
	for _, group := range groups {
		out = append(out, group...)
	}

	return out
}

// rejection is the caller facing text for an assemble error.
func rejection(err error) string {
	if errors.Is(err, ErrInvitationTooLong) {
		return invitationTooLongMessage
	}

	return err.Error()
}
