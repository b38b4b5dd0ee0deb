// Package mcpserver exposes a tool registry over the Model Context
// Protocol using the official Go SDK.
package mcpserver

import (
	"context"
	"encoding/json"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dayuer/airtable-mcp-go/internal/tools"
)

// New builds an MCP server advertising every registered tool.
func New(reg *tools.Registry, version string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: "airtable", Version: version}, nil)
	for _, t := range reg.All() {
		srv.AddTool(&mcp.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.Parameters(),
		}, handler(t))
	}
	return srv
}

// handler bridges one registry tool to an MCP tool handler. The tool's
// text result — success payload or in-band error string — becomes the
// call result content. IsError is never set: the adapter's contract is
// that failures read as ordinary text.
func handler(t tools.Tool) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return nil, err
			}
		}
		out, err := t.Execute(ctx, args)
		if err != nil {
			return nil, err
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: out}},
		}, nil
	}
}

// Run serves MCP over stdio until ctx is canceled or the peer
// disconnects.
func Run(ctx context.Context, srv *mcp.Server) error {
	log.Println("[MCP] serving over stdio")
	return srv.Run(ctx, &mcp.StdioTransport{})
}
