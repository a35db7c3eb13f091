package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Recognized column names. A column is only treated specially when its name
// matches one of these lists exactly; every other column is carried through
// untouched.
var (
	CategoricalColumns = []string{"Company", "Building", "Room Name", "Status", "Active"}

	DateColumns = []string{
		"Date Added", "Last Updated", "Acquisition Date",
		"Warranty Start Date", "Warranty End Date",
		"Lease Start Date", "Lease End Date", "Check Out Date",
	}

	FinancialColumns = []string{"Cost", "Depreciated Value", "Amount Depreciated", "Scrap Value"}
)

var (
	ErrNoHeader = errors.New("file has no header row")
	ErrNoRows   = errors.New("file contains no data rows")
)

// dateLayouts are tried in order when coercing a date cell.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"01/02/2006",
	"01/02/2006 15:04",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Table is an immutable in-memory view of a delimited-text dataset. Cells are
// kept in their textual form; recognized date columns are additionally coerced
// once at load time. Filtering produces a new Table sharing row storage with
// its parent, so a filtered view is always a row-wise subset of the load.
type Table struct {
	Columns []string
	Rows    [][]string

	colIndex map[string]int
	// dates holds coerced values for recognized date columns, parallel to
	// Rows. The zero time marks a cell that could not be parsed.
	dates map[string][]time.Time
}

// ParseCSV reads delimited text into a Table. Short records are padded and
// long records truncated to the header width. Recognized date columns are
// coerced cell by cell; a bad cell becomes a missing value without failing
// the load.
func ParseCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	var rows [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}
		row := make([]string, len(columns))
		for i := range row {
			if i < len(record) {
				row[i] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	t := &Table{Columns: columns, Rows: rows}
	t.index()
	t.coerceDates()
	return t, nil
}

func (t *Table) index() {
	t.colIndex = make(map[string]int, len(t.Columns))
	for i, name := range t.Columns {
		if _, dup := t.colIndex[name]; !dup {
			t.colIndex[name] = i
		}
	}
}

func (t *Table) coerceDates() {
	t.dates = make(map[string][]time.Time)
	for _, col := range DateColumns {
		idx, ok := t.colIndex[col]
		if !ok {
			continue
		}
		parsed := make([]time.Time, len(t.Rows))
		for i, row := range t.Rows {
			parsed[i] = parseDate(row[idx])
		}
		t.dates[col] = parsed
	}
}

// parseDate returns the zero time when no layout matches.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// RowCount returns the number of rows in the view.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIndex[name]
	return ok
}

// ColumnIndex returns the position of a column, or -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	if idx, ok := t.colIndex[name]; ok {
		return idx
	}
	return -1
}

// Cell returns the textual value at the given row for the named column.
func (t *Table) Cell(row int, col string) string {
	idx, ok := t.colIndex[col]
	if !ok || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][idx]
}

// Distinct returns the sorted set of distinct non-missing values in a column.
// Returns nil when the column is absent.
func (t *Table) Distinct(col string) []string {
	idx, ok := t.colIndex[col]
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	for _, row := range t.Rows {
		if v := row[idx]; v != "" {
			seen[v] = struct{}{}
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// DistinctCount returns the number of distinct non-missing values in a column.
func (t *Table) DistinctCount(col string) int {
	return len(t.Distinct(col))
}

// Dates returns the coerced values for a recognized date column, parallel to
// Rows. A zero time marks a missing or unparsable cell.
func (t *Table) Dates(col string) ([]time.Time, bool) {
	d, ok := t.dates[col]
	return d, ok
}

// subset builds a derived view keeping only the rows at the given positions.
// Row storage is shared with the parent; coerced date slices are narrowed in
// step so they stay parallel.
func (t *Table) subset(keep []int) *Table {
	rows := make([][]string, len(keep))
	for i, idx := range keep {
		rows[i] = t.Rows[idx]
	}
	sub := &Table{Columns: t.Columns, Rows: rows, colIndex: t.colIndex}
	sub.dates = make(map[string][]time.Time, len(t.dates))
	for col, parsed := range t.dates {
		narrowed := make([]time.Time, len(keep))
		for i, idx := range keep {
			narrowed[i] = parsed[idx]
		}
		sub.dates[col] = narrowed
	}
	return sub
}

// GroupCount is one group's row count.
type GroupCount struct {
	Key   string
	Count int
}

// GroupCounts counts rows per distinct value of a column, sorted by count
// descending. Missing cells are excluded. Ties keep first-appearance order.
func (t *Table) GroupCounts(col string) []GroupCount {
	idx, ok := t.colIndex[col]
	if !ok {
		return nil
	}
	counts := make(map[string]int)
	var order []string
	for _, row := range t.Rows {
		v := row[idx]
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	out := make([]GroupCount, len(order))
	for i, k := range order {
		out[i] = GroupCount{Key: k, Count: counts[k]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// PairCount is a two-column group's row count.
type PairCount struct {
	First  string
	Second string
	Count  int
}

// PairCounts counts rows per (colA, colB) combination, sorted by count
// descending. Rows missing either cell are excluded.
func (t *Table) PairCounts(colA, colB string) []PairCount {
	ia, okA := t.colIndex[colA]
	ib, okB := t.colIndex[colB]
	if !okA || !okB {
		return nil
	}
	type key struct{ a, b string }
	counts := make(map[key]int)
	var order []key
	for _, row := range t.Rows {
		a, b := row[ia], row[ib]
		if a == "" || b == "" {
			continue
		}
		k := key{a, b}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]PairCount, len(order))
	for i, k := range order {
		out[i] = PairCount{First: k.a, Second: k.b, Count: counts[k]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// ParseAmount coerces a cell into a decimal amount. Currency symbols and
// thousands separators are tolerated. The second return is false for missing
// or unparsable cells.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Amounts coerces a column to decimal values, dropping cells that do not
// parse. The bad cells are excluded from this column only; the owning rows
// remain in the view.
func (t *Table) Amounts(col string) []decimal.Decimal {
	idx, ok := t.colIndex[col]
	if !ok {
		return nil
	}
	values := make([]decimal.Decimal, 0, len(t.Rows))
	for _, row := range t.Rows {
		if d, ok := ParseAmount(row[idx]); ok {
			values = append(values, d)
		}
	}
	return values
}

// WriteCSV serializes the given columns of every row in the view as delimited
// text. Unknown column names are skipped so an export never fails on a stale
// column selection.
func (t *Table) WriteCSV(w io.Writer, cols []string) error {
	present := make([]string, 0, len(cols))
	indices := make([]int, 0, len(cols))
	for _, c := range cols {
		if idx, ok := t.colIndex[c]; ok {
			present = append(present, c)
			indices = append(indices, idx)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(present); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	record := make([]string, len(indices))
	for _, row := range t.Rows {
		for i, idx := range indices {
			record[i] = row[idx]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
