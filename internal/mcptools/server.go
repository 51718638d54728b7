// Package mcptools exposes the seating search as MCP tools.
package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewSeatingMCPServer creates an MCP server with the find_safe_arrangements
// and rotation_profile tools registered.
func NewSeatingMCPServer(svc *SeatingService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "seatperm",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_safe_arrangements",
		Description: "Enumerate circular seating arrangements that start with exactly the given number of people in their own seat and, under every rotation of the table, stay within the funding threshold.",
	}, svc.FindSafeArrangements)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rotation_profile",
		Description: "Return the number of seats matching the identity placement for each rotation of an arrangement, plus the peak.",
	}, svc.RotationProfile)

	return server
}

// RunStdio runs the MCP server on stdio transport, blocking until stdin is
// closed or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
