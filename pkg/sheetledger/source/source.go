// Package source opens spreadsheet workbooks and exposes their sheets as grids.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
)

// ErrUnsupportedFormat indicates a file extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// ErrNoWorkbooks indicates a path contained no readable workbook.
var ErrNoWorkbooks = errors.New("no workbooks found")

// Workbook is an opened spreadsheet file.
type Workbook interface {
	// Name is the file name without directory or extension.
	Name() string
	// Sheets lists the sheet titles in workbook order.
	Sheets() []string
	// Grid returns the cell text of one sheet.
	Grid(sheet string) (models.Grid, error)
	Close() error
}

// Open opens the workbook at path, choosing the reader from its extension.
func Open(path string) (Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return OpenXLSX(path)
	case ".xls":
		return OpenXLS(path)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Supported reports whether Open can read path.
func Supported(path string) bool {
	if strings.HasPrefix(filepath.Base(path), "~$") {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return true
	}
	return false
}

// Discover expands paths into the workbooks to process. A file is taken as is;
// a directory contributes its own workbooks and those of its direct
// sub-folders (one folder per year of ledgers). The result is sorted per path.
func Discover(paths ...string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}

		found, err := listWorkbooks(p)
		if err != nil {
			return nil, err
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			sub, err := listWorkbooks(filepath.Join(p, e.Name()))
			if err != nil {
				return nil, err
			}
			found = append(found, sub...)
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoWorkbooks, strings.Join(paths, ", "))
	}
	return out, nil
}

func listWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !Supported(e.Name()) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out, nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
