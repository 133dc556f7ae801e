// Command gridpath solves start-to-goal mazes written as rows of 0/1/S/G.
//
// Usage:
//
//	gridpath solve maze.txt
//	gridpath solve --png route.png < maze.txt
//	gridpath components maze.txt
//
// Flags may also come from a config file (--config) or GRIDPATH_* environment
// variables, e.g. GRIDPATH_MAX_STEPS=10000.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
