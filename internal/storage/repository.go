// Package storage records upload history. The dataset itself never touches
// disk; only metadata about each upload is persisted.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// UploadRecord is the persisted metadata of one CSV upload.
type UploadRecord struct {
	ID          int64
	Filename    string
	RowCount    int
	ColumnCount int
	UploadedAt  time.Time
}

// Repository stores and lists upload history.
type Repository interface {
	RecordUpload(ctx context.Context, filename string, rows, columns int) (UploadRecord, error)
	RecentUploads(ctx context.Context, limit int) ([]UploadRecord, error)
	Close() error
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// RecordUpload inserts one history row and returns it with its assigned ID.
func (r *SQLiteRepository) RecordUpload(ctx context.Context, filename string, rows, columns int) (UploadRecord, error) {
	rec := UploadRecord{
		Filename:    filename,
		RowCount:    rows,
		ColumnCount: columns,
		UploadedAt:  time.Now().UTC(),
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO uploads (filename, row_count, column_count, uploaded_at) VALUES (?, ?, ?, ?)`,
		rec.Filename, rec.RowCount, rec.ColumnCount, rec.UploadedAt.Format(time.RFC3339))
	if err != nil {
		return UploadRecord{}, fmt.Errorf("insert upload record: %w", err)
	}

	rec.ID, err = res.LastInsertId()
	if err != nil {
		return UploadRecord{}, fmt.Errorf("read upload id: %w", err)
	}
	return rec, nil
}

// RecentUploads lists the newest uploads first, at most limit of them.
func (r *SQLiteRepository) RecentUploads(ctx context.Context, limit int) ([]UploadRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, filename, row_count, column_count, uploaded_at
		 FROM uploads ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query uploads: %w", err)
	}
	defer rows.Close()

	var records []UploadRecord
	for rows.Next() {
		var rec UploadRecord
		var uploadedAt string
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.RowCount, &rec.ColumnCount, &uploadedAt); err != nil {
			return nil, fmt.Errorf("scan upload record: %w", err)
		}
		rec.UploadedAt, err = time.Parse(time.RFC3339, uploadedAt)
		if err != nil {
			return nil, fmt.Errorf("parse uploaded_at %q: %w", uploadedAt, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate uploads: %w", err)
	}
	return records, nil
}

// MemoryRepository keeps upload history in process memory. Used when no
// database path is configured and in tests.
type MemoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	records []UploadRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) RecordUpload(_ context.Context, filename string, rows, columns int) (UploadRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := UploadRecord{
		ID:          r.nextID,
		Filename:    filename,
		RowCount:    rows,
		ColumnCount: columns,
		UploadedAt:  time.Now().UTC(),
	}
	r.nextID++
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *MemoryRepository) RecentUploads(_ context.Context, limit int) ([]UploadRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]UploadRecord, len(r.records))
	copy(out, r.records)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepository) Close() error { return nil }
