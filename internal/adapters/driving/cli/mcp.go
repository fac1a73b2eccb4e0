package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/astrolabe/internal/adapters/driving/mcp"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driven"
	"github.com/custodia-labs/astrolabe/internal/logger"
)

var configWatcher driven.ConfigWatcher

// SetConfigWatcher lets a running MCP server follow edits to the settings file.
func SetConfigWatcher(w driven.ConfigWatcher) {
	configWatcher = w
}

var (
	mcpPort int
	mcpHost string
	mcpRate float64
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve chart tools to an AI assistant",
	Long: `Serve the chart, placement and date tools over the Model Context Protocol.

Without --port the server speaks JSON-RPC on stdin and stdout, which is how
assistants launch it. With --port it listens for streamable HTTP instead,
useful with the MCP Inspector; GET /healthz answers liveness checks.

Edits to ~/.astrolabe/config.toml apply without a restart.

Examples:
  astrolabe mcp serve
  astrolabe mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 serves on stdio)")
	mcpServeCmd.Flags().StringVar(&mcpHost, "host", "localhost", "HTTP listen host")
	mcpServeCmd.Flags().Float64Var(&mcpRate, "rate", 20, "tool calls per second before callers wait")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if mcpPort < 0 || mcpPort > 65535 {
		return fmt.Errorf("invalid port %d", mcpPort)
	}
	if mcpRate <= 0 {
		return fmt.Errorf("--rate must be positive, got %g", mcpRate)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Chart:     chartService,
		Placement: placementService,
		History:   historyService,
	},
		mcp.WithVersion(version),
		mcp.WithRateLimit(mcpRate, max(int(2*mcpRate), 1)),
	)
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if configWatcher != nil {
		go watchConfig(ctx, configWatcher)
	}

	if mcpPort == 0 {
		return server.Run(ctx)
	}

	addr := net.JoinHostPort(mcpHost, strconv.Itoa(mcpPort))
	fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(ctx, addr)
}

func watchConfig(ctx context.Context, w driven.ConfigWatcher) {
	err := w.Watch(ctx, func() {
		logger.Info("Settings changed, new values apply to the next tool call")
	})
	if err != nil {
		logger.Warn("Config watch stopped: %v", err)
	}
}
