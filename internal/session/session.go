// Package session keeps each viewer's uploaded dataset in memory, keyed by
// an opaque cookie ID. Sessions expire on TTL or when the store is full.
package session

import (
	"time"

	"github.com/google/uuid"

	"assetdash/internal/cache"
	"assetdash/internal/dataset"
)

// CookieName is the cookie carrying the session ID.
const CookieName = "assetdash_session"

// Session is one uploaded dataset and what was detected about it.
type Session struct {
	ID         string
	Filename   string
	UploadedAt time.Time
	Table      *dataset.Table
	Schema     dataset.Schema
}

// Store holds sessions in a bounded TTL cache.
type Store struct {
	cache *cache.LRUCache[*Session]
}

// NewStore creates a store holding at most maxSessions uploads, each living
// at most ttl since upload.
func NewStore(maxSessions int, ttl time.Duration) *Store {
	return &Store{cache: cache.NewLRUCache[*Session](maxSessions, ttl)}
}

// Create registers a freshly parsed upload under a new random ID.
func (s *Store) Create(filename string, table *dataset.Table) *Session {
	sess := &Session{
		ID:         uuid.NewString(),
		Filename:   filename,
		UploadedAt: time.Now(),
		Table:      table,
		Schema:     dataset.Detect(table),
	}
	s.cache.Set(sess.ID, sess)
	return sess
}

// Get returns the session for id, or false when unknown or expired.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	return s.cache.Get(id)
}

// Delete discards a session.
func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

// Size reports the number of live sessions.
func (s *Store) Size() int {
	return s.cache.Size()
}

// CleanExpired drops expired sessions, reporting how many were removed.
func (s *Store) CleanExpired() int {
	return s.cache.CleanExpired()
}
