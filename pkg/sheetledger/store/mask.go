package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/ukaji3/sheetledger-go/pkg/sheetledger/models"
)

// Masking prefixes per SQL table and column. Every distinct value of a masked
// column becomes "<prefix> N", N counting from 1 in sorted value order.
var masks = map[string]map[string]string{
	models.SalesSchema.Table:     {"CLIENTE": "Cliente"},
	models.RechargesSchema.Table: {"CLIENTE": "Cliente", "PRODUCTOS": "Producto"},
	models.PendingSchema.Table:   {"CLIENTE": "Cliente"},
	models.AddonsSchema.Table:    {"CLIENTE": "Cliente", "PRODUCTO": "Producto"},
	models.RouteSchema.Table:     {"DIRECCION": "Sector", "COMUNA": "Zona"},
	models.ExpensesSchema.Table:  {"CATEGORIA": "Categoría", "DESCRIPCION": "Detalle"},
}

// Mask copies the output tables of src into dst with client, product, address
// and expense identities replaced by numbered labels. Tables absent from src
// are skipped. It returns the number of rows copied per table.
func Mask(ctx context.Context, src, dst *Store) (map[string]int, error) {
	copied := make(map[string]int)
	for _, schema := range models.Schemas {
		ok, err := src.HasTable(ctx, schema.Table)
		if err != nil {
			return copied, err
		}
		if !ok {
			continue
		}

		cols, rows, err := src.ReadTable(ctx, schema.Table)
		if err != nil {
			return copied, err
		}
		for i, col := range cols {
			if prefix, ok := masks[schema.Table][col]; ok {
				maskColumn(rows, i, prefix)
			}
		}

		if err := dst.ReplaceTable(ctx, tableSchema(schema, cols), rows); err != nil {
			return copied, err
		}
		copied[schema.Table] = len(rows)
	}
	return copied, nil
}

// maskColumn rewrites column col of rows in place. NULL cells stay NULL.
func maskColumn(rows [][]any, col int, prefix string) {
	distinct := make(map[string]bool)
	for _, row := range rows {
		if row[col] != nil {
			distinct[fmt.Sprint(row[col])] = true
		}
	}
	keys := make([]string, 0, len(distinct))
	for k := range distinct {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	labels := make(map[string]string, len(keys))
	for i, k := range keys {
		labels[k] = fmt.Sprintf("%s %d", prefix, i+1)
	}
	for _, row := range rows {
		if row[col] != nil {
			row[col] = labels[fmt.Sprint(row[col])]
		}
	}
}

// tableSchema describes a stored table by its actual columns, typing the ones
// known to base and treating the rest as text.
func tableSchema(base models.Schema, cols []string) models.Schema {
	types := make(map[string]models.ColumnType, len(base.Columns))
	for _, c := range base.Columns {
		types[c.Name] = c.Type
	}
	out := models.Schema{Key: base.Key, Table: base.Table, Columns: make([]models.Column, len(cols))}
	for i, name := range cols {
		t, ok := types[name]
		if !ok {
			t = models.Text
		}
		out.Columns[i] = models.Column{Name: name, Type: t}
	}
	return out
}
