package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/xelahalo/process-mining/mining"
	"github.com/xelahalo/process-mining/petri"
)

func discover(args []string) error {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	inline := fs.Bool("inline", false, "Parse the log as inline task;case;user;date lines")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: procmine discover [options] <log-file>

Discover a workflow Petri net from an event log using the Alpha miner.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("log file required")
	}

	log, err := loadLog(fs.Arg(0), *inline)
	if err != nil {
		return err
	}

	result, err := mining.Discover(log)
	if err != nil {
		return fmt.Errorf("discover: %w", err)
	}

	fmt.Printf("Method: %s\n", result.Method)
	fmt.Printf("Cases: %d (%d variants, most common covers %.1f%%)\n",
		log.NumCases(), result.NumVariants, result.CoveragePercent)
	printNet(result.Net)
	return nil
}

// printNet lists the net's transitions and places with the activity names
// on each side of every place.
func printNet(net *petri.PetriNet) {
	fmt.Printf("\nTransitions (%d):\n", len(net.Transitions))
	for _, t := range net.SortedTransitions() {
		fmt.Printf("  %s\n", t.Name)
	}

	fmt.Printf("\nPlaces (%d):\n", len(net.Places))
	for _, place := range net.SortedPlaces() {
		inputs := transitionNames(net, place.Inputs)
		outputs := transitionNames(net, place.Outputs)
		switch {
		case len(inputs) == 0 && len(outputs) == 0:
			fmt.Printf("  p%d\n", place.ID)
		case len(inputs) == 0:
			fmt.Printf("  p%d (source) -> {%s}\n", place.ID, strings.Join(outputs, ", "))
		case len(outputs) == 0:
			fmt.Printf("  p%d (sink) <- {%s}\n", place.ID, strings.Join(inputs, ", "))
		default:
			fmt.Printf("  p%d: {%s} -> {%s}\n", place.ID, strings.Join(inputs, ", "), strings.Join(outputs, ", "))
		}
	}
	fmt.Printf("\nArcs: %d\n", len(net.Arcs))
}

func transitionNames(net *petri.PetriNet, ids []uuid.UUID) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if t, ok := net.Transitions[id]; ok {
			names = append(names, t.Name)
		}
	}
	return names
}
