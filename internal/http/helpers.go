package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"assetdash/internal/dataset"
	"assetdash/internal/session"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// Filter query parameters, one per sidebar select.
const (
	paramCompany  = "company"
	paramBuilding = "building"
	paramRoom     = "room"
	paramStatus   = "status"
	paramActive   = "active"
	paramSearch   = "q"
	paramColumns  = "cols"
)

// parseSelections reads the filter dropdowns from the query string. Missing
// parameters read as the All sentinel.
func parseSelections(r *http.Request) dataset.Selections {
	q := r.URL.Query()
	get := func(key string) string {
		v := sanitizeInput(q.Get(key))
		if v == "" {
			return dataset.All
		}
		return v
	}
	return dataset.Selections{
		Company:  get(paramCompany),
		Building: get(paramBuilding),
		Room:     get(paramRoom),
		Status:   get(paramStatus),
		Active:   get(paramActive),
	}
}

// parseSearch reads the free-text search term.
func parseSearch(r *http.Request) string {
	return sanitizeInput(r.URL.Query().Get(paramSearch))
}

// parseColumns reads the column picker, one cols parameter per column.
func parseColumns(r *http.Request) []string {
	var cols []string
	for _, c := range r.URL.Query()[paramColumns] {
		if c = sanitizeInput(c); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}

// viewQuery rebuilds the filter state as a query string so chart pages and
// the export link see the same view.
func viewQuery(sel dataset.Selections, search string, cols []string) string {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" && value != dataset.All {
			q.Set(key, value)
		}
	}
	set(paramCompany, sel.Company)
	set(paramBuilding, sel.Building)
	set(paramRoom, sel.Room)
	set(paramStatus, sel.Status)
	set(paramActive, sel.Active)
	if search != "" {
		q.Set(paramSearch, search)
	}
	for _, c := range cols {
		q.Add(paramColumns, c)
	}
	return q.Encode()
}

// sessionFrom resolves the viewer's session from the request cookie.
func (s *Server) sessionFrom(r *http.Request) (*session.Session, bool) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return nil, false
	}
	return s.sessions.Get(cookie.Value)
}

func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
