package http

import (
	"net/http"

	applog "assetdash/internal/log"
	"assetdash/internal/session"
	"assetdash/internal/storage"
)

// handleIndex renders the upload page, with recent upload history when the
// repository has any.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	logger := applog.FromContext(r.Context())
	if s.templates == nil {
		logger.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	var recent []storage.UploadRecord
	if s.history != nil {
		var err error
		recent, err = s.history.RecentUploads(r.Context(), 10)
		if err != nil {
			logger.ErrorContext(r.Context(), "Upload history error", "error", err)
		}
	}

	_, hasSession := s.sessionFrom(r)

	data := struct {
		HasSession    bool
		RecentUploads []storage.UploadRecord
		Error         string
	}{
		HasSession:    hasSession,
		RecentUploads: recent,
		Error:         sanitizeInput(r.URL.Query().Get("error")),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		logger.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleReset drops the viewer's session and returns to the upload page.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if cookie, err := r.Cookie(session.CookieName); err == nil {
		s.sessions.Delete(cookie.Value)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
