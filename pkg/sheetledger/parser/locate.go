package parser

import "github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"

// LocateAnchor returns the first row whose joined, upper-cased text contains one
// of markers. Each call scans the whole grid from the top, so tables are located
// independently of one another.
func LocateAnchor(g models.Grid, markers []string) (int, bool) {
	for i := 0; i < g.Len(); i++ {
		if containsAny(foldAccents(g.Row(i).Text()), markers) {
			return i, true
		}
	}
	return -1, false
}
