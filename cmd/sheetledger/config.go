package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/store"
)

// Environment fallbacks for flags left at their defaults.
const (
	envDB    = "SHEETLEDGER_DB"
	envDelay = "SHEETLEDGER_DELAY"
)

var verbose bool

// resolveDB returns the --db flag, or SHEETLEDGER_DB when the flag was not set.
func resolveDB(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("db") {
		return flagValue
	}
	if v := os.Getenv(envDB); v != "" {
		return v
	}
	if flagValue == "" {
		return store.DefaultPath
	}
	return flagValue
}

// resolveDelay returns the --delay flag, or SHEETLEDGER_DELAY when the flag was not set.
func resolveDelay(cmd *cobra.Command, flagValue time.Duration) (time.Duration, error) {
	if cmd.Flags().Changed("delay") {
		return flagValue, nil
	}
	v := os.Getenv(envDelay)
	if v == "" {
		return flagValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", envDelay, err)
	}
	return d, nil
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
