// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the note listing engine for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/notefeed/internal/notes"
)

// Server wraps the MCP server with Notefeed tools.
type Server struct {
	mcp *server.MCPServer
	svc *notes.Service
}

// New creates a new MCP server with all Notefeed tools registered.
func New(svc *notes.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Notefeed",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List notes sorted newest first, with optional fuzzy search. "+
			"The query matches note fields as a substring, or a date/time window when it "+
			"looks like a date (e.g. \"3/15\", \"2024-03-15\", \"14:30\")."),
		mcp.WithString("query", mcp.Description("Free-text or date search query")),
		mcp.WithNumber("page_size", mcp.Description("Records per page (default 50)")),
		mcp.WithString("after", mcp.Description("Cursor from the previous page's next_cursor")),
		mcp.WithBoolean("fresh", mcp.Description("Bypass the cache and refetch from the backend")),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("refresh_notes",
		mcp.WithDescription("Invalidate the cached note collection so the next listing refetches."),
	), s.refreshNotes)

	s.mcp.AddTool(mcp.NewTool("format_date",
		mcp.WithDescription("Format a timestamp (epoch milliseconds or ISO-8601 string) "+
			"the way the note table renders dates."),
		mcp.WithString("value", mcp.Required(), mcp.Description("Epoch milliseconds or ISO-8601 string")),
	), s.formatDate)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := s.svc.ListNotes(ctx, notes.ListParams{
		PageSize:   req.GetInt("page_size", 0),
		After:      req.GetString("after", ""),
		Query:      req.GetString("query", ""),
		ForceFresh: req.GetBool("fresh", false),
	})
	out, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) refreshNotes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.svc.Refresh()
	return mcp.NewToolResultText("note cache invalidated"), nil
}

func (s *Server) formatDate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var value any = raw
	if ms, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
		value = ms
	}
	out, _ := json.MarshalIndent(s.svc.FormatDate(value), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}
