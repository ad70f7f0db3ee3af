package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"RegimeEye/internal/domain/repository"

	"github.com/google/uuid"
)

// ClickHouseDocumentStore implements DocumentStore on ClickHouse. Collections
// map to tables in the configured database; each row is an opaque JSON
// document keyed by a generated UUID. Append-only, which is all the audit
// trail needs.
type ClickHouseDocumentStore struct {
	db       *sql.DB
	database string
}

// NewClickHouseDocumentStore creates a ClickHouse-backed document store.
func NewClickHouseDocumentStore(db *sql.DB, database string) repository.DocumentStore {
	return &ClickHouseDocumentStore{db: db, database: database}
}

// SchemaStatements returns the idempotent DDL for the store's collections.
func SchemaStatements(database string) []string {
	return []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", database),
		fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s.scenario (id String, doc String, created_at DateTime) ENGINE=MergeTree ORDER BY (created_at, id)",
			database,
		),
	}
}

func (s *ClickHouseDocumentStore) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}

	id := uuid.NewString()
	q := fmt.Sprintf("INSERT INTO %s.%s (id, doc, created_at) VALUES (?, ?, ?)", s.database, collection)
	if _, err := s.db.ExecContext(ctx, q, id, string(data), time.Now().UTC()); err != nil {
		return "", fmt.Errorf("insert document: %w", err)
	}
	return id, nil
}

func (s *ClickHouseDocumentStore) ListCollections(ctx context.Context, limit int) ([]string, error) {
	q := "SELECT name FROM system.tables WHERE database = ? ORDER BY name LIMIT ?"
	rows, err := s.db.QueryContext(ctx, q, s.database, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *ClickHouseDocumentStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
