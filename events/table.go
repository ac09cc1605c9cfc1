package events

import (
	"fmt"
	"strings"
)

// Row is a flat record: column names in insertion order, each mapped to the
// cell text.
type Row struct {
	columns []string
	values  map[string]string
}

type Table struct {
	Header  []string
	Records [][]string
}

// Schema selects the output columns for a set of flattened rows.
type Schema interface {
	Columns(rows []Row) []string
}

// Dynamic keeps every column that appears in the data, in first-seen order,
// with the Trailing columns moved to the end.
type Dynamic struct {
	Trailing []string
}

// Fixed imposes a whitelist of columns. Columns in the data that are not in the
// list are dropped.
type Fixed []string

var DynamicSchema = Dynamic{
	Trailing: []string{HasAttachments, Observation},
}

// ReceivablesSchema is the column layout of the receivables detail sheet. It
// has no cost centre columns.
var ReceivablesSchema = Fixed{
	ID,
	"categoriesRatio.negative",
	"categoriesRatio.grossValue",
	"categoriesRatio.operationType",
	"categoriesRatio.type",
	"categoriesRatio.category",
	"categoriesRatio.value",
	"categoriesRatio.categoryId",
	HasAttachments,
	Observation,
}

func NewRow() Row {
	return Row{
		columns: []string{},
		values:  map[string]string{},
	}
}

func (r *Row) Set(column, value string) {
	if _, ok := r.values[column]; !ok {
		r.columns = append(r.columns, column)
	}

	r.values[column] = value
}

func (r Row) Get(column string) (string, bool) {
	v, ok := r.values[column]

	return v, ok
}

func (r Row) Columns() []string {
	return r.columns
}

func (s Dynamic) Columns(rows []Row) []string {
	trailing := map[string]bool{}
	for _, c := range s.Trailing {
		trailing[c] = true
	}

	seen := map[string]bool{}
	columns := []string{}

	for _, row := range rows {
		for _, c := range row.columns {
			if !seen[c] {
				seen[c] = true
				if !trailing[c] {
					columns = append(columns, c)
				}
			}
		}
	}

	for _, c := range s.Trailing {
		if seen[c] {
			columns = append(columns, c)
		}
	}

	return columns
}

func (s Fixed) Columns(rows []Row) []string {
	return append([]string{}, s...)
}

// Assemble merges the rows into a table using the schema's column set. Missing
// values are rendered as empty strings.
func Assemble(rows []Row, schema Schema) *Table {
	header := schema.Columns(rows)
	records := make([][]string, 0, len(rows))

	for _, row := range rows {
		record := make([]string, len(header))
		for i, h := range header {
			record[i], _ = row.Get(h)
		}

		records = append(records, record)
	}

	return &Table{
		Header:  header,
		Records: records,
	}
}

// ParseSchema maps a --schema option to a column policy. An empty value
// selects the fallback.
func ParseSchema(v string, fallback Schema) (Schema, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return fallback, nil

	case "dynamic":
		return DynamicSchema, nil

	case "fixed":
		if fixed, ok := fallback.(Fixed); ok {
			return fixed, nil
		}
		return ReceivablesSchema, nil

	default:
		return nil, fmt.Errorf("invalid schema '%v' - expected 'dynamic' or 'fixed'", v)
	}
}
