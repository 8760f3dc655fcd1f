package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/jiva/internal/logger"
)

// newRunLogger builds the logger for one command run. The terminal belongs
// to the program, so logs go to --log-file or nowhere. Every entry carries
// the run id.
func newRunLogger(flags *rootFlags, command string) (*logger.Logger, func() error, error) {
	var (
		writer io.Writer = io.Discard
		closer           = func() error { return nil }
	)
	if flags.logFile != "" {
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer = file
		closer = file.Close
	}

	log, err := logger.New(logger.Options{Level: flags.logLevel, Writer: writer, Component: command})
	if err != nil {
		_ = closer()
		return nil, nil, err
	}
	return log.With("run", uuid.NewString()), closer, nil
}
