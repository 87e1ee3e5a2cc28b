// Command tandoor-mcp serves the Tandoor tool catalog over the MCP stdio
// transport.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Ingenimax/tandoor-mcp/pkg/config"
	"github.com/Ingenimax/tandoor-mcp/pkg/logging"
	"github.com/Ingenimax/tandoor-mcp/pkg/tandoor"
	"github.com/Ingenimax/tandoor-mcp/pkg/tools"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tandoor-mcp: %v\n", err)
		os.Exit(1)
	}
	if cfg.LogJSON {
		logging.SetZeroLogJsonEnabled()
	}
	logger := logging.New()

	client := tandoor.NewClient(cfg.BaseURL, cfg.Token, tandoor.WithLogger(logger))
	registry := tools.NewRegistry(client, logger)
	dispatcher := tools.NewDispatcher(registry, logger)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "tandoor-mcp",
		Version: version,
	}, nil)

	specs := registry.Specs()
	for _, spec := range specs {
		mcp.AddTool(server, &mcp.Tool{
			Name:        spec.Name,
			Description: spec.Description,
			InputSchema: spec.InputSchema(),
		}, toolHandler(dispatcher, spec.Name))
	}

	ctx := context.Background()
	logger.Info(ctx, "starting tandoor-mcp stdio server", map[string]interface{}{
		"base_url": cfg.BaseURL,
		"tools":    len(specs),
		"version":  version,
	})

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		logger.Error(ctx, "server stopped", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

// toolHandler adapts one dispatcher tool to the MCP handler signature. Tool
// failures travel in-band as error results so the kind taxonomy
// (invalid-argument, not-found, internal) reaches the caller.
func toolHandler(dispatcher *tools.Dispatcher, name string) func(context.Context, *mcp.CallToolRequest, map[string]any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
		text, err := dispatcher.Dispatch(ctx, name, args)
		if err != nil {
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}
