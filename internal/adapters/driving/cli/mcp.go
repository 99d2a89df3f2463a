package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pdfwords/internal/adapters/driving/mcp"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can classify
PDFs and read their unique words.

Tools:
  classify_pdf    digital or scanned
  extract_words   unique words of one PDF

Resources:
  pdfwords://config                        configured values
  pdfwords://documents/{category}/{file}   words of a PDF under the input root

By default, the server communicates over stdio using JSON-RPC. Use --port to
serve over HTTP instead.

Examples:
  # Stdio mode (default)
  pdfwords mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  pdfwords mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	svc, err := extractionService(settings)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Extraction: svc,
		Config:     configService,
		Root:       settings.Input.Root,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		cmd.Printf("MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
