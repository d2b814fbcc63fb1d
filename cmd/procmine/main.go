package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "discover":
		if err := discover(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "fitness":
		if err := fitness(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "footprint":
		if err := footprint(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "graph":
		if err := graph(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "summary":
		if err := summary(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "store":
		if err := store(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("procmine version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`procmine - process mining tool: discovery and conformance checking

Usage:
  procmine <command> [options]

Commands:
  discover   Discover a workflow Petri net from an event log (Alpha miner)
  fitness    Token-replay fitness of a log against a discovered net
  footprint  Show the footprint matrix of an event log
  graph      Show the dependency graph of an event log
  summary    Display quick summary of an event log
  store      Import, list, summarize or delete logs in a SQLite store
  help       Show this help message
  version    Show version information

Examples:
  # Discover a net from an XES log
  procmine discover running-example.xes

  # Check how well a noisy log fits the net mined from a clean one
  procmine fitness --model clean.xes noisy.xes

  # Inline logs use task;case;user;date lines
  procmine discover --inline events.txt

Options must come before positional arguments; anything after the first
positional argument is not read as an option.

For command-specific help, run:
  procmine <command> --help`)
}
