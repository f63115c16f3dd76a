package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/theme"
	"tableflip.dev/northstar/pkg/timeutil"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerTodayTool(srv, svc)
	registerRecordEntryTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerSummaryTool(srv, svc)
}

func registerTodayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"today",
		mcp.WithDescription("Today's date, theme, scripture reference, reflection questions and current streak."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		today, err := svc.Today(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(today)
	})
}

// recordEntryTool describes q1..q5 with the same prompts the entry is later
// displayed and exported under.
func recordEntryTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Record today's reflection. Entries can not be edited afterwards."),
	}
	for i, q := range entry.Questions {
		opts = append(opts, mcp.WithString(q, mcp.Description(entry.Prompts[i])))
	}
	opts = append(opts, mcp.WithString("actionItem", mcp.Description("One concrete action for tomorrow.")))
	return mcp.NewTool("record_entry", opts...)
}

func registerRecordEntryTool(srv *server.MCPServer, svc *Service) {
	srv.AddTool(recordEntryTool(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args RecordOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.Record(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	names := append([]string{theme.All}, theme.Names()...)
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List journal entries, newest first."),
		mcp.WithString("theme",
			mcp.Description("Optional theme filter."),
			mcp.Enum(names...),
		),
		mcp.WithString("last",
			mcp.Description("Optional window such as 7d or 2w."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		days, _, err := timeutil.ParseDays(request.GetString("last", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		filter := strings.TrimSpace(request.GetString("theme", theme.All))

		entries, err := svc.ListEntries(ctx, filter, days)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"count":   len(entries),
			"entries": entries,
		})
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch one entry with every answer."),
		mcp.WithString("createdAt",
			mcp.Required(),
			mcp.Description("The entry's createdAt key."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := request.RequireString("createdAt")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.Entry(ctx, key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSummaryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"summary",
		mcp.WithDescription("Current streak, the last seven days and per month consistency."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary, err := svc.Summary(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(summary)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
