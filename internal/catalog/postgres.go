package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

// Querier is the subset of pgxpool.Pool the catalog needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// LabelTable is the table classifications are persisted into. It lives in
// the scanned database's default schema and is always excluded from
// enumeration so piiscan never scans its own output.
const LabelTable = "piiscan_label"

const createLabelTableSQL = `
CREATE TABLE IF NOT EXISTS ` + LabelTable + ` (
	schema_name text NOT NULL,
	table_name  text NOT NULL,
	column_name text NOT NULL,
	pii_type    text NOT NULL,
	pii_plugin  text NOT NULL,
	scan_run_id uuid NOT NULL,
	detected_at timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (schema_name, table_name, column_name)
)`

const upsertLabelSQL = `
INSERT INTO ` + LabelTable + ` (schema_name, table_name, column_name, pii_type, pii_plugin, scan_run_id)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (schema_name, table_name, column_name) DO UPDATE
SET pii_type = EXCLUDED.pii_type,
    pii_plugin = EXCLUDED.pii_plugin,
    scan_run_id = EXCLUDED.scan_run_id,
    detected_at = now()`

const listLabelsSQL = `
SELECT schema_name, table_name, column_name, pii_type, pii_plugin, scan_run_id, detected_at
FROM ` + LabelTable + `
ORDER BY schema_name, table_name, column_name`

// Postgres implements piiscan.Catalog against the scanned database itself.
//
// Thread-Safety: safe for concurrent use as long as the underlying Querier
// is (pgxpool.Pool is).
type Postgres struct {
	db     Querier
	logger piiscan.Logger
	runID  uuid.UUID
}

// NewPostgres creates a catalog over db. A fresh scan run ID is assigned;
// every label written through this instance carries it.
//
// Panics if db or logger is nil (programmer error in wiring).
func NewPostgres(db Querier, logger piiscan.Logger) *Postgres {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Postgres{db: db, logger: logger, runID: uuid.New()}
}

// RunID returns the scan run identifier assigned to this catalog instance.
func (c *Postgres) RunID() uuid.UUID { return c.runID }

// EnsureLabelTable creates the label table if it does not exist.
// Must be called once before the first SetColumnPiiType.
func (c *Postgres) EnsureLabelTable(ctx context.Context) error {
	if _, err := c.db.Exec(ctx, createLabelTableSQL); err != nil {
		return fmt.Errorf("failed to create %s: %w", LabelTable, err)
	}
	return nil
}

// SetColumnPiiType persists one classification. The upsert keys on the
// fully-qualified column, so re-running a scan with identical inputs
// rewrites the same rows and the call is idempotent.
func (c *Postgres) SetColumnPiiType(ctx context.Context, column piiscan.Column, piiType piiscan.PiiType, piiPlugin string) error {
	_, err := c.db.Exec(ctx, upsertLabelSQL,
		column.Schema, column.Table, column.Name,
		piiType.Slug(), piiPlugin, c.runID,
	)
	if err != nil {
		return fmt.Errorf("failed to persist label for %s: %w", column.FQDN(), err)
	}
	c.logger.Verbose("Labeled %s as %s (%s)", column.FQDN(), piiType.Slug(), piiPlugin)
	return nil
}

// Label is one persisted classification.
type Label struct {
	Column     piiscan.Column
	PiiType    string
	PiiPlugin  string
	ScanRunID  uuid.UUID
	DetectedAt time.Time
}

// Labels returns all persisted classifications, ordered by column.
func (c *Postgres) Labels(ctx context.Context) ([]Label, error) {
	rows, err := c.db.Query(ctx, listLabelsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	defer rows.Close()

	var labels []Label
	for rows.Next() {
		var l Label
		if err := rows.Scan(&l.Column.Schema, &l.Column.Table, &l.Column.Name,
			&l.PiiType, &l.PiiPlugin, &l.ScanRunID, &l.DetectedAt); err != nil {
			return nil, fmt.Errorf("failed to scan label row: %w", err)
		}
		labels = append(labels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}
	return labels, nil
}
