package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/notefeed/internal/notes"
	"github.com/starford/notefeed/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	client := testutil.BackendServer(t, testutil.Envelope("data.data", testutil.SeedNotes(3, start)), nil)
	svc := notes.NewService(client, notes.Options{
		TTL:      time.Minute,
		Location: time.UTC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return New(svc)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go has no direct "call tool" test helper, so we invoke the
	// handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "list_notes":
		result, err = srv.listNotes(ctx, req)
	case "refresh_notes":
		result, err = srv.refreshNotes(ctx, req)
	case "format_date":
		result, err = srv.formatDate(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestListNotesTool(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "list_notes", map[string]interface{}{})
	var result notes.ListResult
	if err := json.Unmarshal([]byte(resultText(r)), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(result.Notes) != 3 {
		t.Errorf("notes = %d, want 3", len(result.Notes))
	}
}

func TestListNotesTool_Pagination(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "list_notes", map[string]interface{}{"page_size": 2})
	var page1 notes.ListResult
	if err := json.Unmarshal([]byte(resultText(r)), &page1); err != nil {
		t.Fatal(err)
	}
	if len(page1.Notes) != 2 || page1.NextCursor == "" {
		t.Fatalf("page1 = %+v", page1)
	}

	r = callTool(t, srv, "list_notes", map[string]interface{}{
		"page_size": 2,
		"after":     page1.NextCursor,
	})
	var page2 notes.ListResult
	if err := json.Unmarshal([]byte(resultText(r)), &page2); err != nil {
		t.Fatal(err)
	}
	if len(page2.Notes) != 1 || page2.NextCursor != "" {
		t.Errorf("page2 = %+v", page2)
	}
}

func TestRefreshNotesTool(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "refresh_notes", map[string]interface{}{})
	if resultText(r) != "note cache invalidated" {
		t.Errorf("result = %q", resultText(r))
	}
}

func TestFormatDateTool(t *testing.T) {
	srv := testServer(t)
	ts := time.Date(2024, 3, 15, 14, 32, 0, 0, time.UTC)

	r := callTool(t, srv, "format_date", map[string]interface{}{
		"value": strconv.FormatInt(ts.UnixMilli(), 10),
	})
	text := resultText(r)
	if !strings.Contains(text, "03-15-2024 14:32") {
		t.Errorf("result = %q", text)
	}
}

func TestFormatDateTool_ISOString(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "format_date", map[string]interface{}{
		"value": "2024-03-15T14:32:00Z",
	})
	if !strings.Contains(resultText(r), "03-15-2024 14:32") {
		t.Errorf("result = %q", resultText(r))
	}
}

func TestFormatDateTool_MissingValue(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "format_date", map[string]interface{}{})
	if !r.IsError {
		t.Error("expected error when value is omitted")
	}
}
