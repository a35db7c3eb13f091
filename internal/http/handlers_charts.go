package http

import (
	"net/http"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"

	"assetdash/internal/dataset"
	applog "assetdash/internal/log"
	"assetdash/internal/report"
)

// handleChartPage renders one panel's charts as a standalone page, loaded by
// the dashboard in an iframe. The panel sees the same filter state via the
// shared query string.
func (s *Server) handleChartPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFrom(r)
	if !ok {
		http.Error(w, "no dataset uploaded", http.StatusNotFound)
		return
	}

	// Chart panels see the sidebar filters only; the search term stays a
	// data-table concern.
	panel := strings.TrimPrefix(r.URL.Path, "/charts/")
	view := sess.Table.ApplyFilters(parseSelections(r))

	var charts []components.Charter
	switch panel {
	case "overview":
		if c := report.BuildingBar(view); c != nil {
			charts = append(charts, c)
		}
		if c := report.RoomPie(view); c != nil {
			charts = append(charts, c)
		}
		if c := report.ActiveBar(view); c != nil {
			charts = append(charts, c)
		}
	case "location":
		if c := report.BuildingTreemap(view); c != nil {
			charts = append(charts, c)
		}
		if c := report.BuildingRoomSunburst(view); c != nil {
			charts = append(charts, c)
		}
	case "timeline":
		if c := report.AdditionsLine(view); c != nil {
			charts = append(charts, c)
		}
		if c := report.AdditionsMonthlyBar(view); c != nil {
			charts = append(charts, c)
		}
		if c := report.UpdatesArea(view); c != nil {
			charts = append(charts, c)
		}
	case "financial":
		if c := report.CostHistogram(view); c != nil {
			charts = append(charts, c)
		}
	default:
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if len(charts) == 0 {
		writeChartPlaceholder(w, view)
		return
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(charts...)
	if err := page.Render(w); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Chart page render failed", "error", err, applog.FieldPanel, panel)
	}
}

func writeChartPlaceholder(w http.ResponseWriter, view *dataset.Table) {
	msg := "No data matches the current filters."
	if view.RowCount() > 0 {
		msg = "The dataset has no columns for this panel."
	}
	_, _ = w.Write([]byte(`<!DOCTYPE html><html><body style="font-family:sans-serif;color:#666;padding:2em">` + msg + `</body></html>`))
}
