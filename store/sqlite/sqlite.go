/*
Package sqlite provides a SQLite-backed implementation of payroll.Store.

PURPOSE:
  Persists work type records in a SQLite database. The console app opens
  it with ":memory:", so the data lives exactly as long as the process,
  same as the in-memory store. A file path works too; nothing in the
  registry assumes either.

UNIQUENESS:
  Name uniqueness is enforced by a UNIQUE column constraint. Violations
  are mapped to payroll.DuplicateWorkTypeError so callers never see
  driver-level errors.

ORDERING:
  Insertion order is the rowid order; List selects ORDER BY rowid.

USAGE:
  st, err := sqlite.New(":memory:")
  if err != nil {
      log.Fatal().Err(err).Msg("open store")
  }
  defer st.Close()

  dept := payroll.NewDepartment(st, logger)

SEE ALSO:
  - store/memory.go: In-memory implementation with the same contract
  - payroll/department.go: Interface definition
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-registry/payroll"
)

// Store implements payroll.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a SQLite store at the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS work_types (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		base_pay TEXT NOT NULL,
		bonus_percent TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// STORE INTERFACE
// =============================================================================

// Append inserts a record. Name collisions map to DuplicateWorkTypeError.
func (s *Store) Append(ctx context.Context, r payroll.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO work_types (id, name, base_pay, bonus_percent)
		VALUES (?, ?, ?, ?)`,
		r.ID, r.Name, r.BasePay.String(), r.BonusPercent.String(),
	)
	if isUniqueConstraintError(err) {
		return &payroll.DuplicateWorkTypeError{Name: r.Name}
	}
	if err != nil {
		return fmt.Errorf("inserting work type: %w", err)
	}
	return nil
}

// List returns all records in insertion (rowid) order.
func (s *Store) List(ctx context.Context) ([]payroll.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, base_pay, bonus_percent
		FROM work_types
		ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying work types: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var r payroll.Record
		var basePay, bonusPercent string
		if err := rows.Scan(&r.ID, &r.Name, &basePay, &bonusPercent); err != nil {
			return nil, fmt.Errorf("scanning work type: %w", err)
		}
		if r.BasePay, err = decimalFromColumn("base_pay", basePay); err != nil {
			return nil, err
		}
		if r.BonusPercent, err = decimalFromColumn("bonus_percent", bonusPercent); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Exists reports whether a record with the given name is present.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM work_types WHERE name = ?`, name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking work type existence: %w", err)
	}
	return count > 0, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func decimalFromColumn(column, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", column, value, err)
	}
	return d, nil
}
