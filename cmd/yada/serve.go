// Package main provides the entry point for the yada CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/yada/internal/config"
	yadamcp "github.com/gorewood/yada/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run yada as a Model Context Protocol (MCP) server over stdio.

This exposes the catalog and food log as MCP tools that any MCP-capable
agent environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "yada": {
        "command": "yada",
        "args": ["serve"]
      }
    }
  }

Available tools: search_foods, add_basic_food, add_composite_food,
log_food, daily_total, calorie_target`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadDefault()
			if err != nil {
				return err
			}
			server := yadamcp.NewServer(buildVersion(), cfg)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
