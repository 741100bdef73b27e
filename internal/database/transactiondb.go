package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/txreport/internal/locale"
	"github.com/nao1215/txreport/internal/model"
)

// FileName is the name of the database file inside the database directory.
const FileName = "txreport.db"

// TransactionDB provides SQLite-based storage for transactions.
// It is safe for concurrent use.
type TransactionDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures TransactionDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a TransactionDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*TransactionDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file; mode=rwc allows it.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	tdb := &TransactionDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := tdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return tdb, nil
}

// Path returns the path of the database file.
func (tdb *TransactionDB) Path() string {
	return tdb.dbPath
}

// Close closes the database connection.
func (tdb *TransactionDB) Close() error {
	return tdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (tdb *TransactionDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		transaction_date TEXT NOT NULL,
		description TEXT NOT NULL,
		value TEXT NOT NULL,
		category TEXT NULL,
		import_batch TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_batch ON transactions(import_batch);
	`

	_, err := tdb.db.ExecContext(context.Background(), schema)
	return err
}

// InsertTransactions stores records under batchID in a single SQL
// transaction. Either every record is stored or none is.
// It returns the number of stored records.
func (tdb *TransactionDB) InsertTransactions(ctx context.Context, batchID string, records []model.Transaction) (int, error) {
	tx, err := tdb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after Commit
	}()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO transactions (transaction_date, description, value, category, import_batch)
	VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		var category sql.NullString
		if r.Category != "" {
			category = sql.NullString{String: r.Category, Valid: true}
		}

		if _, err := stmt.ExecContext(ctx,
			locale.FormatISODate(r.Date),
			r.Description,
			locale.PlainDecimal(r.Value),
			category,
			batchID,
		); err != nil {
			return 0, fmt.Errorf("failed to insert transaction %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return len(records), nil
}

// FetchAll returns every stored transaction in insertion order.
func (tdb *TransactionDB) FetchAll(ctx context.Context) ([]model.Transaction, error) {
	rows, err := tdb.db.QueryContext(ctx, `
	SELECT transaction_date, description, value, category
	FROM transactions
	ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var results []model.Transaction
	for rows.Next() {
		var (
			date     string
			value    string
			category sql.NullString
			r        model.Transaction
		)
		if err := rows.Scan(&date, &r.Description, &value, &category); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		if r.Date, err = locale.ParseISODate(date); err != nil {
			return nil, err
		}
		if r.Value, err = decimal.NewFromString(value); err != nil {
			return nil, fmt.Errorf("invalid stored value %q: %w", value, err)
		}
		r.Category = category.String

		results = append(results, r)
	}

	return results, rows.Err()
}

// Count returns the number of stored transactions.
func (tdb *TransactionDB) Count(ctx context.Context) (int, error) {
	var n int
	if err := tdb.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

// BatchSummary describes one import batch.
type BatchSummary struct {
	ID         string
	Count      int
	ImportedAt time.Time
}

// ListBatches returns a summary of every import batch, oldest first.
func (tdb *TransactionDB) ListBatches(ctx context.Context) ([]BatchSummary, error) {
	rows, err := tdb.db.QueryContext(ctx, `
	SELECT import_batch, COUNT(*), MIN(created_at)
	FROM transactions
	WHERE import_batch IS NOT NULL
	GROUP BY import_batch
	ORDER BY MIN(id) ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer rows.Close()

	var results []BatchSummary
	for rows.Next() {
		var (
			b         BatchSummary
			createdAt string
		)
		if err := rows.Scan(&b.ID, &b.Count, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan batch: %w", err)
		}
		b.ImportedAt = parseTimestamp(createdAt)
		results = append(results, b)
	}

	return results, rows.Err()
}

// timestampFormats lists the formats SQLite may use for DATETIME columns.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default format
	time.RFC3339,              // ISO 8601 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
