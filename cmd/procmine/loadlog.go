package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/xelahalo/process-mining/eventlog"
)

// loadLog reads an event log from a file, as XES by default or as the
// inline task;case;user;date format when inline is set.
func loadLog(path string, inline bool) (*eventlog.EventLog, error) {
	if inline {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return eventlog.LogFromString(string(data)), nil
	}

	log, err := eventlog.ReadXES(path)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return log, nil
}

// newLogger builds the CLI logger; verbose switches debug logging on.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
