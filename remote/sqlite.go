package remote

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/strata-app/strata/types"
)

const createDocumentsTable = `
CREATE TABLE IF NOT EXISTS documents (
	user_id    TEXT PRIMARY KEY,
	document   TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// SQLiteStore is a self-hosted document store backed by a single SQLite
// file. It satisfies the same contract as the hosted HTTP store and is
// handy for single-machine setups where no hosted endpoint exists.
type SQLiteStore struct {
	db *sql.DB
	sq squirrel.StatementBuilderType
}

// NewSQLiteStore opens (and if needed initializes) the store at path.
// Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(createDocumentsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteStore{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Load fetches the document for userID.
func (s *SQLiteStore) Load(ctx context.Context, userID string) (types.Document, error) {
	query, args, err := s.sq.
		Select("document").
		From("documents").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return types.Document{}, fmt.Errorf("failed to build query: %w", err)
	}

	var payload string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Document{}, ErrNotFound
		}
		return types.Document{}, fmt.Errorf("failed to load document: %w", err)
	}

	var doc types.Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return types.Document{}, fmt.Errorf("failed to parse stored document: %w", err)
	}
	return doc, nil
}

// Save upserts the full document for userID with a fresh timestamp.
func (s *SQLiteStore) Save(ctx context.Context, userID string, doc types.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	query, args, err := s.sq.
		Insert("documents").
		Columns("user_id", "document", "updated_at").
		Values(userID, string(payload), time.Now().UTC()).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
