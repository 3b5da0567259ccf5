package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/store"
)

var (
	maskSrc string
	maskDst string
)

func newMaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Copy the database with client and expense identities masked",
		Args:  cobra.NoArgs,
		RunE:  runMask,
	}

	cmd.Flags().StringVar(&maskSrc, "db", store.DefaultPath, "Source SQLite database (env "+envDB+")")
	cmd.Flags().StringVar(&maskDst, "out", "db_portafolio.db", "Masked database to create")

	return cmd
}

func runMask(cmd *cobra.Command, args []string) error {
	log := newLogger(os.Stderr)

	srcPath := resolveDB(cmd, maskSrc)
	if _, err := os.Stat(srcPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", srcPath)
	}
	if srcPath == maskDst {
		return errors.New("--out must differ from the source database")
	}

	src, err := store.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := store.Open(maskDst)
	if err != nil {
		return err
	}
	defer dst.Close()

	copied, err := store.Mask(cmd.Context(), src, dst)
	if err != nil {
		return fmt.Errorf("masking failed: %w", err)
	}
	log.Info("masked copy written", slog.String("path", maskDst), slog.Any("rows", copied))
	return nil
}
