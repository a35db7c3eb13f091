package http

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"assetdash/internal/dataset"
	applog "assetdash/internal/log"
	"assetdash/internal/report"
	"assetdash/internal/session"
)

// maxTableRows caps the explorer table; the export still carries every row.
const maxTableRows = 500

type filterSelect struct {
	Label    string
	Param    string
	Options  []string
	Selected string
}

type columnOption struct {
	Name    string
	Checked bool
}

type costView struct {
	Count  int
	Total  string
	Mean   string
	Median string
}

type buildingCostRow struct {
	Building string
	Totals   []string
}

type dashboardData struct {
	Filename   string
	UploadedAt string

	TotalAssets    int
	BuildingsLabel string
	RoomsLabel     string
	ActiveLabel    string

	Filters []filterSelect
	Search  string
	Query   string

	ColumnOptions []columnOption
	TableColumns  []string
	TableRows     [][]string
	RowsShown     int
	RowsTotal     int
	MatchCount    int

	HasLocation  bool
	Locations    []report.LocationRow
	HasTimeline  bool
	HasFinancial bool
	Cost         *costView
	ColumnTotals []columnTotal
	FinColumns   []string
	FinRows      []buildingCostRow

	RenderedAt string
}

type columnTotal struct {
	Column string
	Total  string
}

// handleDashboard renders the filtered view: metric cards, sidebar state,
// panel iframes and the explorer table.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFrom(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	sel := parseSelections(r)
	search := parseSearch(r)
	cols := parseColumns(r)

	// The sidebar filters shape the whole page; the search term narrows only
	// the data table and the export.
	view := sess.Table.ApplyFilters(sel)
	tableView := view.Search(search)
	metrics := report.Summarize(view)

	data := dashboardData{
		Filename:       sess.Filename,
		UploadedAt:     sess.UploadedAt.Format("2006-01-02 15:04"),
		TotalAssets:    metrics.TotalAssets,
		BuildingsLabel: metrics.BuildingsLabel(),
		RoomsLabel:     metrics.RoomsLabel(),
		ActiveLabel:    metrics.ActiveLabel(),
		Search:         search,
		Query:          viewQuery(sel, search, cols),
		HasTimeline:    sess.Schema.Has("Date Added") || sess.Schema.Has("Last Updated"),
		HasFinancial:   len(sess.Schema.Financial) > 0,
		RenderedAt:     time.Now().Format("2006-01-02 15:04:05"),
	}

	data.Filters = buildFilters(sess, sel)

	displayCols := report.DisplayColumns(tableView, cols)
	data.TableColumns = displayCols
	data.RowsTotal = tableView.RowCount()
	data.TableRows = tableRows(tableView, displayCols, maxTableRows)
	data.RowsShown = len(data.TableRows)
	data.MatchCount = view.RowCount()

	selected := make(map[string]bool, len(cols))
	for _, c := range cols {
		selected[c] = true
	}
	for _, c := range sess.Table.Columns {
		data.ColumnOptions = append(data.ColumnOptions, columnOption{Name: c, Checked: selected[c]})
	}

	if sess.Schema.Has("Building") && sess.Schema.Has("Room Name") {
		data.HasLocation = true
		data.Locations = report.LocationSummary(view)
	}

	if stats, ok := report.CostSummary(view); ok {
		data.Cost = &costView{
			Count:  stats.Count,
			Total:  formatDollars(stats.Total),
			Mean:   formatDollars(stats.Mean),
			Median: formatDollars(stats.Median),
		}
	}
	for _, col := range sess.Schema.Financial {
		if col == "Cost" {
			continue
		}
		if total, ok := report.ColumnTotal(view, col); ok {
			data.ColumnTotals = append(data.ColumnTotals, columnTotal{Column: col, Total: formatDollars(total)})
		}
	}
	if fin := report.FinancialByBuilding(view); fin != nil {
		data.FinColumns = fin.Columns
		for _, row := range fin.Rows {
			totals := make([]string, len(row.Totals))
			for i, t := range row.Totals {
				totals[i] = formatDollars(t)
			}
			data.FinRows = append(data.FinRows, buildingCostRow{Building: row.Building, Totals: totals})
		}
	}

	if err := s.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Dashboard template execution failed", "error", err, "template", "dashboard.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// buildFilters derives the sidebar selects from the full dataset, not the
// filtered view, so narrowing one filter never hides the others' options.
func buildFilters(sess *session.Session, sel dataset.Selections) []filterSelect {
	full := sess.Table

	var filters []filterSelect
	add := func(label, param, col, selected string, options []string) {
		if !full.HasColumn(col) {
			return
		}
		filters = append(filters, filterSelect{
			Label:    label,
			Param:    param,
			Options:  append([]string{dataset.All}, options...),
			Selected: selected,
		})
	}

	add("Company", paramCompany, "Company", sel.Company, full.Distinct("Company"))
	add("Building", paramBuilding, "Building", sel.Building, full.Distinct("Building"))
	add("Room", paramRoom, "Room Name", sel.Room, full.Distinct("Room Name"))
	add("Status", paramStatus, "Status", sel.Status, full.Distinct("Status"))
	// The Active flag is a known vocabulary, not a data-driven one.
	add("Active", paramActive, "Active", sel.Active, []string{"Yes", "No"})

	return filters
}

func tableRows(t *dataset.Table, cols []string, limit int) [][]string {
	n := t.RowCount()
	if n > limit {
		n = limit
	}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = t.Cell(i, c)
		}
		rows = append(rows, row)
	}
	return rows
}

func formatDollars(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
