package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/northstar/pkg/theme"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerTodayResource(srv, svc)
	registerEntriesResource(srv, svc)
	registerEntryTemplate(srv, svc)
}

func registerTodayResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"northstar://today",
		"Today",
		mcp.WithResourceDescription("Today's theme, scripture and streak."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		today, err := svc.Today(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, today)
	})
}

func registerEntriesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"northstar://entries",
		"Entries",
		mcp.WithResourceDescription("Every journal entry, newest first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		entries, err := svc.ListEntries(ctx, theme.All, 0)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"count":   len(entries),
			"entries": entries,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerEntryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"northstar://entries/{createdAt}",
		"Entry Details",
		mcp.WithTemplateDescription("Every answer of a single entry."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		key := templateArg(request.Params.Arguments["createdAt"])
		if key == "" {
			return nil, fmt.Errorf("entry createdAt is required")
		}

		dto, err := svc.Entry(ctx, key)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"entry": dto})
	})
}

// templateArg reads a matched URI template variable, which arrives either
// as a string or as a one element list.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
