package dataset

// Schema is the capability record produced by one detection pass over a
// loaded table: which recognized columns are actually present. Panels consult
// it instead of probing the table repeatedly.
type Schema struct {
	Categorical []string
	Dates       []string
	Financial   []string

	present map[string]bool
}

// Detect inspects a table once and records the recognized columns it carries.
func Detect(t *Table) Schema {
	s := Schema{present: make(map[string]bool)}
	for _, col := range CategoricalColumns {
		if t.HasColumn(col) {
			s.Categorical = append(s.Categorical, col)
			s.present[col] = true
		}
	}
	for _, col := range DateColumns {
		if t.HasColumn(col) {
			s.Dates = append(s.Dates, col)
			s.present[col] = true
		}
	}
	for _, col := range FinancialColumns {
		if t.HasColumn(col) {
			s.Financial = append(s.Financial, col)
			s.present[col] = true
		}
	}
	return s
}

// Has reports whether a recognized column was found in the table.
func (s Schema) Has(col string) bool {
	return s.present[col]
}
