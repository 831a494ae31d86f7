package mcp

import (
	"context"
	"fmt"

	"github.com/descware/descgen/internal/tool"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers every registry tool with the MCP server.
func RegisterTools(s *server.MCPServer, registry *tool.Registry) int {
	tools := registry.List()
	for _, t := range tools {
		s.AddTool(BuildTool(t.Definition()), ToolHandler(t))
	}
	return len(tools)
}

// BuildTool converts a capability descriptor into an mcp.Tool with the
// appropriate schema.
func BuildTool(def tool.Definition) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
	for _, p := range def.Parameters {
		opts = append(opts, buildParamOption(p))
	}
	return mcp.NewTool(def.Name, opts...)
}

// buildParamOption maps a Param to the appropriate mcp-go tool option.
func buildParamOption(p tool.Param) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcp.Required())
	}

	switch p.Type {
	case "number":
		return mcp.WithNumber(p.Name, opts...)
	case "boolean":
		return mcp.WithBoolean(p.Name, opts...)
	case "array":
		opts = append([]mcp.PropertyOption{mcp.WithStringItems()}, opts...)
		return mcp.WithArray(p.Name, opts...)
	default:
		return mcp.WithString(p.Name, opts...)
	}
}

// ToolHandler adapts an MCP tool call to a registry tool execution. The
// description text is returned as text content; execution failures become
// MCP error results rather than protocol errors.
func ToolHandler(t tool.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := r.GetArguments()
		if args == nil {
			args = map[string]any{}
		}

		result, err := t.Execute(args)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(result.Content)},
		}, nil
	}
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
