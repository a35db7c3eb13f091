package dataset

import "strings"

// All is the sentinel selector value that leaves a column unfiltered.
const All = "All"

// Selections holds the sidebar filter state. Filters compose conjunctively
// and are applied in the fixed order Company, Building, Room Name, Status,
// Active.
type Selections struct {
	Company  string
	Building string
	Room     string
	Status   string
	Active   string
}

// ordered returns the selections paired with their column names in
// application order.
func (s Selections) ordered() [5]struct{ Col, Value string } {
	return [5]struct{ Col, Value string }{
		{"Company", s.Company},
		{"Building", s.Building},
		{"Room Name", s.Room},
		{"Status", s.Status},
		{"Active", s.Active},
	}
}

// IsZero reports whether no selector is active.
func (s Selections) IsZero() bool {
	for _, sel := range s.ordered() {
		if sel.Value != "" && sel.Value != All {
			return false
		}
	}
	return true
}

// FilterEqual keeps only the rows whose cell in the given column equals value
// exactly. An absent column leaves the view unchanged.
func (t *Table) FilterEqual(col, value string) *Table {
	idx, ok := t.colIndex[col]
	if !ok {
		return t
	}
	var keep []int
	for i, row := range t.Rows {
		if row[idx] == value {
			keep = append(keep, i)
		}
	}
	return t.subset(keep)
}

// ApplyFilters evaluates the active selectors sequentially against the view.
// The "All" sentinel (or an empty selection) skips a selector, as does a
// column missing from the table.
func (t *Table) ApplyFilters(sel Selections) *Table {
	view := t
	for _, s := range sel.ordered() {
		if s.Value == "" || s.Value == All {
			continue
		}
		view = view.FilterEqual(s.Col, s.Value)
	}
	return view
}

// Search keeps rows where at least one cell's text form contains the term,
// case-insensitively. An empty term returns the view unchanged.
func (t *Table) Search(term string) *Table {
	term = strings.TrimSpace(term)
	if term == "" {
		return t
	}
	needle := strings.ToLower(term)
	var keep []int
	for i, row := range t.Rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), needle) {
				keep = append(keep, i)
				break
			}
		}
	}
	return t.subset(keep)
}
