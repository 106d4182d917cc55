// Package main provides the CLI entrypoint for the daily puzzle solutions.
//
// Commands:
//   - solve: run a registered day's solver on its input
//   - trace: show every domain a seed passes through
//   - check: report malformed or suspicious almanac content
//   - dump:  print the parsed almanac
//   - days:  list registered days
//   - config: print the effective configuration
package main

import (
	"os"

	_ "github.com/BlackVoid/aoc2023/internal/puzzle/day05"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
