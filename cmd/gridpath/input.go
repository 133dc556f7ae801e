package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// readRows returns the non-blank, non-comment lines of r with surrounding
// whitespace removed. Lines starting with '#' are comments.
func readRows(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}

	return rows, nil
}

// loadGrid parses the grid from the file named by args[0], or from stdin when
// no argument or "-" is given.
func loadGrid(cmd *cobra.Command, args []string) (*gridgraph.GridGraph, error) {
	in := cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	rows, err := readRows(in)
	if err != nil {
		return nil, err
	}

	return gridgraph.FromRows(rows)
}
