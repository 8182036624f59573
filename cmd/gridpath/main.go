// Command gridpath edits grids, finds shortest paths on them with A*, and
// animates the search.
//
// Commands:
//
//	gridpath tui     interactive terminal editor
//	gridpath serve   HTTP API with websocket replay streaming
//	gridpath solve   search a random board and print it
//	gridpath mcp     Model Context Protocol tools over stdio
//
// Settings come from an optional HCL file (--config), then GRIDPATH_*
// environment variables (a .env file in the working directory is loaded
// first), then flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

// Version of the gridpath command.
const Version = "1.0.0"

func main() {
	// Load .env file if it exists; a missing file is not an error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}
}
