package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Brakebein/neo4j-request/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check connectivity and report server information",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, server, cleanup, err := connectClient(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Printf("Server:         %s\n", server.Agent)
	fmt.Printf("Address:        %s\n", server.Address)
	if server.Version != "" {
		fmt.Printf("Version:        %s\n", server.Version)
	}
	fmt.Printf("Multi-database: %v\n", server.MultiDatabase)

	status := client.Health(ctx)
	fmt.Printf("Health:         %s\n", colorState(status))

	if status.Message != "" {
		fmt.Printf("                %s\n", status.Message)
	}

	return nil
}

func colorState(status types.HealthStatus) string {
	switch status.State {
	case types.HealthStateHealthy:
		return color.GreenString(status.State.String())
	case types.HealthStateDegraded:
		return color.YellowString(status.State.String())
	default:
		return color.RedString(status.State.String())
	}
}
