package http

import (
	"net/http"
	"time"

	applog "assetdash/internal/log"
	"assetdash/internal/report"
)

// handleExport streams the filtered view as a CSV download, restricted to
// the displayed columns.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFrom(r)
	if !ok {
		http.Error(w, "no dataset uploaded", http.StatusNotFound)
		return
	}

	view := sess.Table.ApplyFilters(parseSelections(r)).Search(parseSearch(r))
	cols := report.DisplayColumns(view, parseColumns(r))

	filename := report.ExportFilename(time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	logger := applog.FromContext(r.Context())
	if err := view.WriteCSV(w, cols); err != nil {
		// Headers are gone; all we can do is log.
		logger.ErrorContext(r.Context(), "Export write failed", "error", err, applog.FieldFilename, filename)
		return
	}

	logger.InfoContext(r.Context(), "Export served",
		applog.FieldOperation, applog.OpExport,
		applog.FieldSessionID, sess.ID,
		applog.FieldFilename, filename,
		applog.FieldRowCount, view.RowCount(),
		applog.FieldColumnCount, len(cols))
}
