package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Brakebein/neo4j-request/graph"
	"github.com/Brakebein/neo4j-request/internal/config"
)

var (
	cfgFile string
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "neo4j-request",
	Short: "Convenience CLI for Neo4j transactions",
	Long: `neo4j-request runs Cypher statements against a Neo4j database with
connection retry, multi-statement transactions, and result normalization.

Connection settings come from a YAML config file, NEO4J_* environment
variables (e.g. NEO4J_CONNECTION_URI, NEO4J_CONNECTION_PASSWORD), or
built-in defaults, in that order of precedence.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command with signal handling
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(batchCmd)
}

// loadConfig is called before any command runs to load configuration
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.NewLoader().LoadWithDefaults(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	level := parseLogLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// connectClient builds a client from the loaded configuration and connects
// it. The returned cleanup must be called to release the driver.
func connectClient(ctx context.Context) (graph.Client, graph.ServerInfo, func(), error) {
	client, err := graph.NewNeo4jClient(cfg.Connection)
	if err != nil {
		return nil, graph.ServerInfo{}, nil, err
	}

	server, err := client.Connect(ctx)
	if err != nil {
		return nil, graph.ServerInfo{}, nil, err
	}

	cleanup := func() {
		if err := client.Close(context.Background()); err != nil {
			slog.Warn("failed to close client", "error", err)
		}
	}

	return client, server, cleanup, nil
}
