package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/xelahalo/process-mining/logstore"
)

func store(args []string) error {
	fs := flag.NewFlagSet("store", flag.ExitOnError)
	db := fs.String("db", "procmine.db", "Path to the SQLite store")
	inline := fs.Bool("inline", false, "Parse imported logs as inline task;case;user;date lines")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: procmine store [options] <action> [arguments]

Manage event logs in a SQLite store.

Actions:
  import <log-file> <name>   Parse a log file and store it under a name
  list                       List stored logs
  summary <name>             Summarize a stored log
  delete <name>              Remove a stored log

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("action required")
	}

	s, err := logstore.Open(*db, logstore.WithLogger(newLogger(*verbose)))
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()

	switch action := fs.Arg(0); action {
	case "import":
		if fs.NArg() < 3 {
			return fmt.Errorf("usage: procmine store import <log-file> <name>")
		}
		log, err := loadLog(fs.Arg(1), *inline)
		if err != nil {
			return err
		}
		if err := s.SaveLog(ctx, fs.Arg(2), log); err != nil {
			return err
		}
		fmt.Printf("Imported %d cases (%d events) as %q\n", log.NumCases(), log.NumEvents(), fs.Arg(2))
	case "list":
		names, err := s.ListLogs(ctx)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No stored logs")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
	case "summary":
		if fs.NArg() < 2 {
			return fmt.Errorf("usage: procmine store summary <name>")
		}
		log, err := s.LoadLog(ctx, fs.Arg(1))
		if err != nil {
			return err
		}
		sum := log.Summarize()
		fmt.Printf("Cases: %d\nEvents: %d\nActivities: %d\nProcess variants: %d\n",
			sum.NumCases, sum.NumEvents, sum.NumActivities, sum.NumVariants)
	case "delete":
		if fs.NArg() < 2 {
			return fmt.Errorf("usage: procmine store delete <name>")
		}
		if err := s.DeleteLog(ctx, fs.Arg(1)); err != nil {
			return err
		}
		fmt.Printf("Deleted %q\n", fs.Arg(1))
	default:
		return fmt.Errorf("unknown action: %s", action)
	}

	return nil
}
