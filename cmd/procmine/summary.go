package main

import (
	"flag"
	"fmt"
	"os"
)

func summary(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	inline := fs.Bool("inline", false, "Parse the log as inline task;case;user;date lines")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: procmine summary [options] <log-file>

Display quick summary of an event log.

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

	s := log.Summarize()
	fmt.Printf("Cases: %d\n", s.NumCases)
	fmt.Printf("Events: %d\n", s.NumEvents)
	fmt.Printf("Activities: %d\n", s.NumActivities)
	fmt.Printf("Process variants: %d\n", s.NumVariants)
	fmt.Printf("Avg events per case: %.1f\n", s.AvgCaseLength)

	if s.NumActivities > 0 {
		fmt.Println("\nActivities:")
		for _, activity := range log.Activities() {
			fmt.Printf("  %s\n", activity)
		}
	}

	return nil
}
