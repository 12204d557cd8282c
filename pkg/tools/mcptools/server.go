// Package mcptools exposes the rentahuman tool catalog over the Model
// Context Protocol, so any MCP-capable agent runtime can hire humans
// without a bespoke integration.
package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rentahuman/rentahuman-go/pkg/tools"
)

// NewServer builds an MCP server with the full tool catalog registered.
func NewServer(api tools.API, version string) *server.MCPServer {
	srv := server.NewMCPServer(
		"rentahuman",
		version,
		server.WithToolCapabilities(true),
	)
	Register(srv, tools.Catalog(api))
	return srv
}

// Register adds each catalog tool to an MCP server.
func Register(srv *server.MCPServer, catalog []tools.Tool) {
	for _, t := range catalog {
		srv.AddTool(BuildTool(t), Handler(t))
	}
}

// BuildTool translates a catalog tool's schema into an MCP tool
// declaration.
func BuildTool(t tools.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}
	for _, p := range t.Params {
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		switch p.Type {
		case tools.ParamNumber, tools.ParamInteger:
			opts = append(opts, mcp.WithNumber(p.Name, propOpts...))
		case tools.ParamStringArray:
			opts = append(opts, mcp.WithArray(p.Name, propOpts...))
		default:
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		}
	}
	return mcp.NewTool(t.Name, opts...)
}

// Handler wraps a catalog tool's Run as an MCP tool handler. Tool failures
// come back as tool-result errors rather than protocol errors, so the agent
// sees them and can adjust.
func Handler(t tools.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := t.Run(ctx, request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

// ServeStdio runs the server over stdin/stdout until the stream closes.
func ServeStdio(srv *server.MCPServer) error {
	return server.ServeStdio(srv)
}
