package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/recipe-book/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can read and
edit the recipe book.

Tools: list_recipes, add_recipe, update_recipe, delete_recipe.

By default, the server communicates over stdio using JSON-RPC. Use --port
to serve streamable HTTP instead.

Examples:
  # Stdio mode (default)
  recipes mcp serve

  # HTTP mode
  recipes mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	book, err := openBook()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Book: book})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
