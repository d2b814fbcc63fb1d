package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xelahalo/process-mining/mining"
)

func footprint(args []string) error {
	fs := flag.NewFlagSet("footprint", flag.ExitOnError)
	inline := fs.Bool("inline", false, "Parse the log as inline task;case;user;date lines")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: procmine footprint [options] <log-file>

Show the footprint matrix (causality, parallel and choice relations) of
an event log.

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

	fmt.Print(mining.NewFootprintMatrix(log).String())
	return nil
}
