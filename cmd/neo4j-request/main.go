package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	ctx := context.Background()

	// Execute() handles signal notification internally via signal.NotifyContext
	if err := Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
