// scalecalc evaluates Warframe enemy scaling from YAML presets.
//
// Usage:
//
//	scalecalc summary [--preset name] [overrides]
//	scalecalc series  [--samples N] [--format table|markdown|csv|json]
//	scalecalc compare --metric health [--factions grineer,corpus]
//	scalecalc ab      --a name --b name [--metric ehp]
//	scalecalc preset  save <name> | list
//	scalecalc watch   [--interval 1s]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
