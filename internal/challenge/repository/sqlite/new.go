package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"challenge-admin/internal/challenge/repository"
	"challenge-admin/pkg/log"
	pkgSqlite "challenge-admin/pkg/sqlite"
)

//go:embed schema.sql
var schema string

// dateLayout is how start/end dates are stored.
const dateLayout = "2006-01-02"

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a new SQLite-backed Repository for the challenge domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("challenge/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// Migrate creates the challenge tables.
func Migrate(ctx context.Context, db *sql.DB) error {
	return pkgSqlite.Migrate(ctx, db, schema)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("challenge/repository/sqlite.%s", method)
}

func isConstraintViolation(err error) bool {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY || se.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE
}
