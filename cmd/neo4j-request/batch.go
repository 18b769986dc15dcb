package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Brakebein/neo4j-request/graph"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.json>",
	Short: "Run a JSON array of statements in one atomic transaction",
	Long: `Run multiple Cypher statements sequentially inside a single explicit
transaction. The input file holds a JSON array of statements:

  [
    {"query": "CREATE (n:Item {name: $name})", "params": {"name": "a"}},
    {"query": "MATCH (n:Item) RETURN count(n) AS total"}
  ]

If any statement fails, the whole transaction is rolled back and no
results are printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	statements, err := readStatements(args[0])
	if err != nil {
		return err
	}

	client, _, cleanup, err := connectClient(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := client.ExecuteBatch(ctx, statements)
	if err != nil {
		return err
	}

	return printJSON(results)
}

func readStatements(path string) ([]graph.Statement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read statements file: %w", err)
	}

	var statements []graph.Statement
	if err := json.Unmarshal(data, &statements); err != nil {
		return nil, fmt.Errorf("failed to parse statements file %s: %w", path, err)
	}
	if len(statements) == 0 {
		return nil, fmt.Errorf("statements file %s contains no statements", path)
	}
	return statements, nil
}
