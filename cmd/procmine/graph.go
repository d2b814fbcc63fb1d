package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/xelahalo/process-mining/eventlog"
)

func graph(args []string) error {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	inline := fs.Bool("inline", false, "Parse the log as inline task;case;user;date lines")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: procmine graph [options] <log-file>

Show the dependency graph of an event log: per task, the direct
successors with their observation counts.

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

	dg := eventlog.DependencyGraph(log)
	tasks := make([]string, 0, len(dg))
	for task := range dg {
		tasks = append(tasks, task)
	}
	sort.Strings(tasks)

	for _, task := range tasks {
		successors := dg[task]
		if len(successors) == 0 {
			fmt.Printf("%s\n", task)
			continue
		}
		names := make([]string, 0, len(successors))
		for name := range successors {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Printf("%s\n", task)
		for _, name := range names {
			fmt.Printf("  -> %s (%d)\n", name, successors[name])
		}
	}

	return nil
}
