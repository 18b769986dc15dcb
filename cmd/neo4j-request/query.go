package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Brakebein/neo4j-request/graph"
)

var (
	queryWrite  bool
	queryParams []string
	queryPrune  string
)

var queryCmd = &cobra.Command{
	Use:   "query <cypher>",
	Short: "Run a single Cypher statement and print the normalized records",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&queryWrite, "write", false, "run the statement in a write transaction")
	queryCmd.Flags().StringArrayVar(&queryParams, "param", nil, "statement parameter as key=value (repeatable)")
	queryCmd.Flags().StringVar(&queryPrune, "prune", "", "prune null collection artifacts, as field:checkField")
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	params, err := parseParams(queryParams)
	if err != nil {
		return err
	}

	client, _, cleanup, err := connectClient(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	var records []graph.Record
	if queryWrite {
		records, err = client.ExecuteWrite(ctx, args[0], params)
	} else {
		records, err = client.ExecuteRead(ctx, args[0], params)
	}
	if err != nil {
		return err
	}

	if queryPrune != "" {
		field, checkField, ok := strings.Cut(queryPrune, ":")
		if !ok || field == "" || checkField == "" {
			return fmt.Errorf("invalid --prune value %q, expected field:checkField", queryPrune)
		}
		records = graph.PruneNullCollections(records, field, checkField)
	}

	return printJSON(records)
}

// parseParams converts repeated key=value flags into statement parameters.
// Values are passed to the server as int64, float64, bool, or string,
// whichever parses first.
func parseParams(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param value %q, expected key=value", pair)
		}
		params[key] = coerceParam(value)
	}
	return params, nil
}

func coerceParam(value string) any {
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
