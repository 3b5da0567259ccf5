package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/output"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/store"
)

var (
	dbPath      string
	jsonPath    string
	summaryPath string
	pretty      bool
	noDB        bool
	delay       time.Duration
	tables      []string
)

func newIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest [path...]",
		Short: "Extract ledger tables from workbooks and folders",
		Long: `ingest extracts the ledger tables from workbook files and folders.
A folder contributes its workbooks and those of its direct sub-folders.
Each non-empty table replaces its previous contents in the database.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runIngest,
	}

	cmd.Flags().StringVar(&dbPath, "db", store.DefaultPath, "SQLite database path (env "+envDB+")")
	cmd.Flags().BoolVar(&noDB, "no-db", false, "Do not write the database")
	cmd.Flags().StringVar(&jsonPath, "json", "", "Also write the tables as JSON to this path (- for stdout)")
	cmd.Flags().StringVar(&summaryPath, "summary", "", "Write per-sheet summaries as JSON to this path (- for stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Pause between sheets, e.g. 1.2s (env "+envDelay+")")
	cmd.Flags().StringSliceVar(&tables, "tables", nil, "Only extract these tables (sales,recharges,pending,addons,route,expenses)")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	log := newLogger(os.Stderr)

	sheetDelay, err := resolveDelay(cmd, delay)
	if err != nil {
		return err
	}
	if err := validateTables(tables); err != nil {
		return err
	}

	opts := sheetledger.DefaultOptions()
	opts.SheetDelay = sheetDelay
	opts.Logger = log
	opts.Tables = tables

	ts, report, err := sheetledger.Ingest(cmd.Context(), args, opts)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if !noDB {
		path := resolveDB(cmd, dbPath)
		st, err := store.Open(path)
		if err != nil {
			return err
		}
		defer st.Close()

		written, err := st.WriteTableSet(cmd.Context(), ts)
		if err != nil {
			return fmt.Errorf("failed to write database: %w", err)
		}
		log.Info("database written", slog.String("path", path), slog.Any("rows", written))
	}

	if jsonPath != "" {
		data, err := output.ToJSON(ts, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := writeOutput(jsonPath, data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if summaryPath != "" {
		data, err := output.SummaryToJSON(report.Workbooks, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := writeOutput(summaryPath, data); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	log.Info("ingestion finished",
		slog.Int("workbooks", len(report.Workbooks)),
		slog.Int("sheets", report.Sheets()),
		slog.Int("records", ts.Len()),
		slog.Int("errors", len(report.Errors)))
	return nil
}

func validateTables(names []string) error {
	for _, n := range names {
		known := false
		for _, s := range models.Schemas {
			if s.Key == n {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("invalid table: %s", n)
		}
	}
	return nil
}
