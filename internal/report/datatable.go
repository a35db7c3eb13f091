package report

import (
	"time"

	"assetdash/internal/dataset"
)

// DefaultColumns are the table columns shown before the viewer picks any.
var DefaultColumns = []string{
	"Asset ID",
	"Company",
	"Building",
	"Room Name",
	"Status",
	"Active",
	"Date Added",
	"Last Updated",
}

// DisplayColumns resolves the column picker against the table. Selected
// columns are kept in selection order, dropping those the table lacks; an
// empty or fully-absent selection falls back to the present defaults.
func DisplayColumns(t *dataset.Table, selected []string) []string {
	var cols []string
	for _, c := range selected {
		if t.HasColumn(c) {
			cols = append(cols, c)
		}
	}
	if len(cols) > 0 {
		return cols
	}
	for _, c := range DefaultColumns {
		if t.HasColumn(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// ExportFilename stamps the export download name with the given time.
func ExportFilename(now time.Time) string {
	return "filtered_assets_" + now.Format("20060102_150405") + ".csv"
}
