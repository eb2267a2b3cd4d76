// Package mcp provides a Model Context Protocol server for yada.
// It exposes the food catalog, converters, daily log, and calorie target
// as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/yada/internal/config"
)

// NewServer creates an MCP server with all yada tools registered.
func NewServer(version string, cfg *config.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "yada",
		Version: version,
	}, nil)
	registerTools(server, cfg)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all yada tools to the server.
func registerTools(server *mcp.Server, cfg *config.Config) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_foods",
		Description: "Search the food catalog by keywords. match_all=true requires every keyword; otherwise any keyword matches. Empty keywords list all foods.",
		Annotations: readOnlyAnnotations(),
	}, handleSearch(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_basic_food",
		Description: "Add a basic food (name, keywords, calories per serving) to the catalog.",
		Annotations: writeAnnotations(),
	}, handleAddBasic(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_composite_food",
		Description: "Add a composite food defined by component servings to the catalog. Components with zero servings are dropped.",
		Annotations: writeAnnotations(),
	}, handleAddComposite(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_food",
		Description: "Log servings of a food against a date (YYYY-MM-DD) in the daily food log.",
		Annotations: writeAnnotations(),
	}, handleLogFood(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "daily_total",
		Description: "Total calories consumed on a date (YYYY-MM-DD) according to the daily food log.",
		Annotations: readOnlyAnnotations(),
	}, handleDailyTotal(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "calorie_target",
		Description: "Recommended daily calorie intake from the configured diet profile and strategy.",
		Annotations: readOnlyAnnotations(),
	}, handleCalorieTarget(cfg))
}
