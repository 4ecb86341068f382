// Package main provides a terminal demo host for the flowlayout engine.
//
// Usage:
//
//	flowdemo run [-horizontal] [-log file]    Interactive demo
//	flowdemo dump [-width n] [-frames]        Print the laid out catalog
//	flowdemo sweep [-from n -to n -step n]    Lay out the catalog at several widths
//	flowdemo help                             Show help
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `flowdemo - terminal host for the flowlayout geometry engine

Usage:
  flowdemo <command> [options]

Commands:
  run         Interactive demo: scroll, edit and resize a sectioned catalog
  dump        Lay out the catalog once and print it
  sweep       Lay out the catalog at a range of widths in parallel
  version     Print version information
  help        Show this help message

Examples:
  flowdemo run                        Vertical waterfall, tag and row sections
  flowdemo run -horizontal            Start with horizontal scrolling
  flowdemo run -log /tmp/flow.log     Write prepare/batch/measure logs
  flowdemo dump -width 60             Draw the whole catalog 60 cells wide
  flowdemo dump -frames               List every element frame
  flowdemo sweep -from 30 -to 90      Compare content sizes across widths

Set FLOWLAYOUT_DEBUG=<file> to log from any command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		if err := runInteractive(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "dump":
		if err := runDump(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "sweep":
		if err := runSweep(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("flowdemo version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
