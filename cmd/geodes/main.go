// Command geodes reports how many geodes robot-factory blueprints can crack.
//
// Usage:
//
//	geodes quality [file]   Σ blueprint number · max geodes (24 minutes)
//	geodes product [file]   product of max geodes of the first 3 blueprints (32 minutes)
//	geodes max [file]       max geodes per blueprint
//
// Input is read from file, or from standard input when no file is given.
// Settings come from --config (YAML), .env and GEODES_* variables; flags win.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "geodes:", err)
		stop()
		os.Exit(1)
	}
}
