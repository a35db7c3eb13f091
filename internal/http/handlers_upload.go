package http

import (
	"errors"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"assetdash/internal/dataset"
	applog "assetdash/internal/log"
)

// handleUpload parses a posted CSV, stores it in a new session and redirects
// to the dashboard. Parse failures bounce back to the upload page with a
// visible message.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger := applog.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		logger.WarnContext(r.Context(), "Upload form rejected", "error", err)
		s.uploadError(w, r, "The file is too large or the form is malformed.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.WarnContext(r.Context(), "Upload missing file field", "error", err)
		s.uploadError(w, r, "Choose a CSV file to upload.")
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		s.uploadError(w, r, "Only .csv files are supported.")
		return
	}

	table, err := dataset.ParseCSV(file)
	if err != nil {
		logger.WarnContext(r.Context(), "Upload parse failed", "error", err, applog.FieldFilename, filename)
		switch {
		case errors.Is(err, dataset.ErrNoHeader):
			s.uploadError(w, r, "The file has no header row.")
		case errors.Is(err, dataset.ErrNoRows):
			s.uploadError(w, r, "The file has a header but no data rows.")
		default:
			s.uploadError(w, r, "The file could not be parsed as CSV: "+err.Error())
		}
		return
	}

	sess := s.sessions.Create(filename, table)
	setSessionCookie(w, sess.ID)

	structured := applog.NewStructuredLogger(logger)

	if s.history != nil {
		if _, err := s.history.RecordUpload(r.Context(), filename, table.RowCount(), len(table.Columns)); err != nil {
			// History is best effort; the session is already live.
			structured.LogError(r.Context(), "Upload history write failed", err,
				applog.ComponentStorage, applog.OpUpload,
				applog.NewFields().WithUpload(sess.ID, filename, table.RowCount(), len(table.Columns)))
		}
	}

	structured.LogUploadAccepted(r.Context(), sess.ID, filename, table.RowCount(), len(table.Columns))

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) uploadError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/?error="+url.QueryEscape(msg), http.StatusSeeOther)
}
