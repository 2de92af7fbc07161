package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const (
	postgresMaxOpenConns    = 5
	postgresConnMaxLifetime = 30 * time.Minute
)

// OpenPostgres connects to postgres using dsn (URL or key=value form).
func OpenPostgres(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres database: %w", err)
	}

	db.SetMaxOpenConns(postgresMaxOpenConns)
	db.SetConnMaxLifetime(postgresConnMaxLifetime)

	return newStore(ctx, db, "postgres")
}
