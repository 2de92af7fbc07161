// Package sqlstore persists the store state in a SQL database. The same
// schema and queries serve sqlite (mattn/go-sqlite3) and postgres (lib/pq);
// both drivers accept $N placeholders, so only the driver setup differs.
package sqlstore

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

//go:embed schema.sql
var schemaSQL string

// Compile-time interface checks.
var (
	_ ports.StateStore    = (*Store)(nil)
	_ ports.StateCreator  = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const (
	selectOwner   = `SELECT owner FROM store_owner WHERE singleton = 1`
	selectRecords = `SELECT id, title, due_date, is_done FROM store_records ORDER BY seq`
	upsertOwner   = `INSERT INTO store_owner (singleton, owner) VALUES (1, $1)
		ON CONFLICT (singleton) DO UPDATE SET owner = excluded.owner`
	insertOwner = `INSERT INTO store_owner (singleton, owner) VALUES (1, $1)
		ON CONFLICT (singleton) DO NOTHING`
	deleteRecords = `DELETE FROM store_records`
	insertRecord  = `INSERT INTO store_records (seq, id, title, due_date, is_done) VALUES ($1, $2, $3, $4, $5)`
)

// Store implements [ports.StateStore] over *sql.DB.
type Store struct {
	db     *sql.DB
	driver string
}

// newStore applies the schema and wraps db. It takes ownership of db and
// closes it on failure.
func newStore(ctx context.Context, db *sql.DB, driver string) (*Store, error) {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to %s: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying %s schema: %w", driver, err)
	}
	return &Store{db: db, driver: driver}, nil
}

// Load reads the owner row and the ordered records.
func (s *Store) Load(ctx context.Context) (*todo.State, error) {
	var owner string
	err := s.db.QueryRowContext(ctx, selectOwner).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading owner: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, selectRecords)
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []todo.Todo{}
	for rows.Next() {
		var t todo.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.DueDate, &t.IsDone); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return &todo.State{Owner: todo.Identity(owner), Records: records}, nil
}

// Save replaces the stored state inside one transaction, so readers see
// either the old or the new list.
func (s *Store) Save(ctx context.Context, state *todo.State) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, upsertOwner, state.Owner.String()); err != nil {
			return fmt.Errorf("writing owner: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deleteRecords); err != nil {
			return fmt.Errorf("clearing records: %w", err)
		}
		return writeRecords(ctx, tx, state.Records)
	})
}

// Create writes the first state. The owner row is inserted with
// ON CONFLICT DO NOTHING, so when another host initialized first no row is
// affected and the transaction is rolled back with domain.ErrConflict.
func (s *Store) Create(ctx context.Context, state *todo.State) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, insertOwner, state.Owner.String())
		if err != nil {
			return fmt.Errorf("writing owner: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("writing owner: %w", err)
		}
		if n == 0 {
			return domain.ErrConflict
		}
		return writeRecords(ctx, tx, state.Records)
	})
}

// inTx runs fn in a transaction, committing when fn succeeds.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing state: %w", err)
	}
	return nil
}

// writeRecords inserts records in list order; seq preserves that order.
func writeRecords(ctx context.Context, tx *sql.Tx, records []todo.Todo) error {
	if len(records) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, insertRecord)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, t := range records {
		if _, err := stmt.ExecContext(ctx, i, t.ID, t.Title, t.DueDate, t.IsDone); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}
	return nil
}

// Name implements [ports.HealthChecker].
func (s *Store) Name() string {
	return "state-store"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", s.driver, err)
	}
	return nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
