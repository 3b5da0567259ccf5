// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
)

// ToJSON serializes a TableSet as an object keyed by logical table name.
// Empty collections are written as [] rather than null.
func ToJSON(ts *models.TableSet, pretty bool) ([]byte, error) {
	out := models.TableSet{}
	if ts != nil {
		out = *ts
	}
	out.Sales = nonNil(out.Sales)
	out.Recharges = nonNil(out.Recharges)
	out.Pending = nonNil(out.Pending)
	out.Addons = nonNil(out.Addons)
	out.Route = nonNil(out.Route)
	out.Expenses = nonNil(out.Expenses)
	return marshal(out, pretty)
}

// SummaryToJSON serializes the per-workbook sheet summaries of a run.
func SummaryToJSON(workbooks []models.WorkbookSummary, pretty bool) ([]byte, error) {
	return marshal(nonNil(workbooks), pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
