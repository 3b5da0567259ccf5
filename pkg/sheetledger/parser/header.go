package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
)

// Semantic field names. They match the output column names.
const (
	FieldDate       = "FECHA"
	FieldClient     = "CLIENTE"
	FieldProducts   = "PRODUCTOS"
	FieldProduct    = "PRODUCTO"
	FieldQuantity   = "CANTIDAD"
	FieldPrice      = "PRECIO"
	FieldTotal      = "TOTAL-PAGAR"
	FieldCash       = "EFECTIVO"
	FieldTransfer   = "TRANSFERENCIA"
	FieldCard       = "TARJETA"
	FieldPending    = "PENDIENTE"
	FieldDebtDate   = "FECHA-DEUDA"
	FieldDebtAmount = "DEUDA-MONTO"
	FieldAmount     = "MONTO"
	FieldDetail     = "DETALLE"
	FieldAddress    = "DIRECCION"
	FieldCommune    = "COMUNA"
	FieldValue      = "VALOR"
	FieldRouteTotal = "TOTAL"
	FieldExtra      = "EXTRA"
)

// Field describes how one semantic field is found in a header row.
type Field struct {
	// Name is the semantic field name.
	Name string
	// Synonyms are upper-case tokens; a column whose title contains one of them
	// belongs to this field.
	Synonyms []string
	// Default is the column used when no title matches. -1 means absent.
	Default int
}

// HeaderMap maps semantic field names to column indexes for one located table.
// It is built once by ResolveHeader and never changes afterwards.
type HeaderMap struct {
	index    map[string]int
	resolved map[string]bool
	titles   []string
}

// ResolveHeader builds a HeaderMap from the titles of a header row.
//
// Defaults are seeded first. Columns are then visited left to right; each column
// is claimed by the first field, in the order given, with a synonym contained in
// its normalized title. A field keeps the first column that claims it, so later
// look-alike columns are ignored.
func ResolveHeader(titles []string, fields []Field) HeaderMap {
	hm := HeaderMap{
		index:    make(map[string]int, len(fields)),
		resolved: make(map[string]bool, len(fields)),
		titles:   make([]string, len(titles)),
	}
	for _, f := range fields {
		hm.index[f.Name] = f.Default
	}

	for col, title := range titles {
		t := NormalizeHeader(title)
		hm.titles[col] = t
		if t == "" {
			continue
		}
		for _, f := range fields {
			if !containsAny(t, f.Synonyms) {
				continue
			}
			if !hm.resolved[f.Name] {
				hm.index[f.Name] = col
				hm.resolved[f.Name] = true
			}
			break
		}
	}
	return hm
}

// CombineHeaderRows merges a header split over two physical rows into one
// title per column ("TOTAL A" + "PAGAR" -> "TOTAL A PAGAR").
func CombineHeaderRows(top, bottom models.Row) []string {
	width := len(top)
	if len(bottom) > width {
		width = len(bottom)
	}
	titles := make([]string, width)
	for i := range titles {
		titles[i] = NormalizeHeader(top.Raw(i) + " " + bottom.Raw(i))
	}
	return titles
}

// Index returns the column of field name, or -1 when the field is unknown or absent.
func (h HeaderMap) Index(name string) int {
	if i, ok := h.index[name]; ok {
		return i
	}
	return -1
}

// Resolved reports whether the column of name came from header text rather than a default.
func (h HeaderMap) Resolved(name string) bool {
	return h.resolved[name]
}

// Missing returns the names that were not resolved from header text.
func (h HeaderMap) Missing(names ...string) []string {
	var missing []string
	for _, n := range names {
		if !h.resolved[n] {
			missing = append(missing, n)
		}
	}
	return missing
}

// Titles returns the normalized header titles the map was built from.
func (h HeaderMap) Titles() []string {
	return append([]string(nil), h.titles...)
}

// Reach returns the furthest column a data row must contain: the highest
// resolved column or the key column, whichever is larger.
func (h HeaderMap) Reach(key string) int {
	reach := h.Index(key)
	for name, col := range h.index {
		if h.resolved[name] && col > reach {
			reach = col
		}
	}
	return reach
}

// Cell returns the trimmed text of field name in row, "" when absent.
func (h HeaderMap) Cell(row models.Row, name string) string {
	return row.Cell(h.Index(name))
}

// Amount returns the currency value of field name in row.
func (h HeaderMap) Amount(row models.Row, name string) float64 {
	return ParseCurrency(h.Cell(row, name))
}

// requireFields fails with ErrSchemaNotFound when any of names was not found in the header.
func requireFields(hm HeaderMap, names ...string) error {
	missing := hm.Missing(names...)
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: missing %s; got headers=%q", ErrSchemaNotFound, strings.Join(missing, ","), hm.titles)
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
