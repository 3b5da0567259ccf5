package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
)

// StopReason tells why a table extraction ended.
type StopReason int

const (
	// StopExhausted means the grid ran out of rows.
	StopExhausted StopReason = iota
	// StopBlankKey means the key cell of a row was empty.
	StopBlankKey
	// StopTotal means the key cell contained the TOTAL summary marker.
	StopTotal
	// StopBoundary means the key cell contained the marker of the next section.
	StopBoundary
	// StopShortRow means a row did not reach the furthest referenced column.
	StopShortRow
	// StopNoAnchor means no anchor row was found; the table is absent from the sheet.
	StopNoAnchor
	// StopNoHeader means the header could not be read.
	StopNoHeader
)

func (r StopReason) String() string {
	switch r {
	case StopExhausted:
		return "exhausted"
	case StopBlankKey:
		return "blank key"
	case StopTotal:
		return "total marker"
	case StopBoundary:
		return "section boundary"
	case StopShortRow:
		return "short row"
	case StopNoAnchor:
		return "no anchor"
	case StopNoHeader:
		return "no header"
	}
	return fmt.Sprintf("StopReason(%d)", int(r))
}

// totalMarker ends every table.
const totalMarker = "TOTAL"

// SheetContext carries per-sheet values shared by every record of a table.
type SheetContext struct {
	// Date is the ledger date derived from the sheet title (ISO), empty if none.
	Date string
}

// TableSpec describes one anchored sub-table and how its rows become records.
type TableSpec[T any] struct {
	// Name is the logical table name, used in diagnostics.
	Name string
	// Anchors are the marker phrases that open the table.
	Anchors []string
	// Fields are the recognized columns, in claim priority order.
	Fields []Field
	// Key is the field whose cell drives the stop conditions.
	Key string
	// Boundaries are markers in the key cell that signal the next section began.
	Boundaries []string
	// Build turns a data row into a record.
	Build func(row models.Row, hm HeaderMap, sc SheetContext) T
	// Keep is the validity predicate; rows failing it are dropped. Nil keeps all.
	Keep func(T) bool
}

// Result is the outcome of extracting one table from one grid.
type Result[T any] struct {
	// Records are the rows that passed the validity predicate, in grid order.
	Records []T
	// Anchor is the anchor row index, -1 when the table has no anchor or none was found.
	Anchor int
	// Header is the resolved header map.
	Header HeaderMap
	// Stop is the reason extraction ended.
	Stop StopReason
	// StopRow is the row index at which extraction ended.
	StopRow int
	// Dropped counts data rows rejected by the validity predicate.
	Dropped int
}

// Extract locates spec's anchor in g, resolves the header row below it and
// extracts records from the rows after the header.
//
// A missing anchor is not an error: the result is empty with StopNoAnchor.
// An anchor on the last row yields ErrHeaderNotFound.
func Extract[T any](g models.Grid, spec TableSpec[T], sc SheetContext) (Result[T], error) {
	anchor, ok := LocateAnchor(g, spec.Anchors)
	if !ok {
		return Result[T]{Anchor: -1, Stop: StopNoAnchor, StopRow: g.Len()}, nil
	}

	headerRow := anchor + 1
	if headerRow >= g.Len() {
		return Result[T]{Anchor: anchor, Stop: StopNoHeader, StopRow: headerRow},
			fmt.Errorf("%s: anchor at row %d: %w", spec.Name, anchor+1, ErrHeaderNotFound)
	}

	hm := ResolveHeader(g.Row(headerRow), spec.Fields)
	res := ExtractRows(g, headerRow+1, hm, spec, sc)
	res.Anchor = anchor
	return res, nil
}

// ExtractRows walks g from row start using hm until a stop condition is met.
// The cursor advances one row per iteration; blank rows end the table rather
// than being skipped.
func ExtractRows[T any](g models.Grid, start int, hm HeaderMap, spec TableSpec[T], sc SheetContext) Result[T] {
	res := Result[T]{Anchor: -1, Header: hm}
	reach := hm.Reach(spec.Key)

	for i := start; ; i++ {
		if i >= g.Len() {
			res.Stop, res.StopRow = StopExhausted, i
			return res
		}
		row := g.Row(i)
		if len(row) <= reach {
			res.Stop, res.StopRow = StopShortRow, i
			return res
		}

		key := foldKey(hm.Cell(row, spec.Key))
		switch {
		case key == "":
			res.Stop, res.StopRow = StopBlankKey, i
			return res
		case strings.Contains(key, totalMarker):
			res.Stop, res.StopRow = StopTotal, i
			return res
		case containsAny(key, spec.Boundaries):
			res.Stop, res.StopRow = StopBoundary, i
			return res
		}

		rec := spec.Build(row, hm, sc)
		if spec.Keep != nil && !spec.Keep(rec) {
			res.Dropped++
			continue
		}
		res.Records = append(res.Records, rec)
	}
}
