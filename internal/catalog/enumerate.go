package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

// SchemaFilter restricts which schemas are enumerated. System schemas and
// the label table are always excluded.
type SchemaFilter struct {
	// Include, when non-empty, restricts enumeration to the listed schemas.
	Include []string

	// Exclude removes schemas after Include is applied.
	Exclude []string
}

// columnsSQL builds the enumeration query. Filters are bound as array
// parameters; identifiers never enter the SQL text.
func columnsSQL(filter SchemaFilter) (string, []any) {
	sql := `
SELECT table_schema, table_name, column_name, data_type
FROM information_schema.columns
WHERE table_schema NOT IN ('pg_catalog', 'information_schema')
  AND table_name <> '` + LabelTable + `'`

	var args []any
	if len(filter.Include) > 0 {
		args = append(args, filter.Include)
		sql += fmt.Sprintf("\n  AND table_schema = ANY($%d)", len(args))
	}
	if len(filter.Exclude) > 0 {
		args = append(args, filter.Exclude)
		sql += fmt.Sprintf("\n  AND table_schema <> ALL($%d)", len(args))
	}

	sql += "\nORDER BY table_schema, table_name, ordinal_position"
	return sql, args
}

// Columns returns a lazy enumeration of all scannable columns. Every range
// over the returned sequence re-runs the query, which is exactly what the
// scan drivers need: the sizing pass and the work pass are the same logical
// set, enumerated twice.
func (c *Postgres) Columns(ctx context.Context, filter SchemaFilter) piiscan.ColumnSeq {
	sql, args := columnsSQL(filter)

	return func(yield func(piiscan.Column, error) bool) {
		rows, err := c.db.Query(ctx, sql, args...)
		if err != nil {
			yield(piiscan.Column{}, fmt.Errorf("failed to enumerate columns: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var col piiscan.Column
			if err := rows.Scan(&col.Schema, &col.Table, &col.Name, &col.DataType); err != nil {
				yield(piiscan.Column{}, fmt.Errorf("failed to scan column row: %w", err))
				return
			}
			if !yield(col, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(piiscan.Column{}, fmt.Errorf("failed to enumerate columns: %w", err))
		}
	}
}

// Samples returns a lazy enumeration of sampled cell values: up to
// sampleSize values from every text-typed column that Columns(filter)
// yields, in column order. NULL cells are yielded with Valid=false so the
// data-scan driver can count them as processed without classifying them.
//
// Sampling takes the first sampleSize rows in physical order. That is the
// cheap strategy: no ORDER BY random() over large tables.
func (c *Postgres) Samples(ctx context.Context, filter SchemaFilter, sampleSize int) piiscan.SampleSeq {
	if sampleSize <= 0 {
		sampleSize = piiscan.DefaultSampleSize
	}

	return func(yield func(piiscan.Sample, error) bool) {
		for col, err := range c.Columns(ctx, filter) {
			if err != nil {
				yield(piiscan.Sample{}, err)
				return
			}
			if !col.IsText() {
				continue
			}
			if !c.sampleColumn(ctx, col, sampleSize, yield) {
				return
			}
		}
	}
}

// sampleColumn streams one column's sampled values into yield.
// Returns false when iteration should stop (consumer break or error).
func (c *Postgres) sampleColumn(ctx context.Context, col piiscan.Column, sampleSize int, yield func(piiscan.Sample, error) bool) bool {
	sql := fmt.Sprintf("SELECT %s::text FROM %s LIMIT $1",
		pgx.Identifier{col.Name}.Sanitize(),
		pgx.Identifier{col.Schema, col.Table}.Sanitize(),
	)

	rows, err := c.db.Query(ctx, sql, sampleSize)
	if err != nil {
		return yield(piiscan.Sample{}, fmt.Errorf("failed to sample %s: %w", col.FQDN(), err))
	}
	defer rows.Close()

	for rows.Next() {
		var value *string
		if err := rows.Scan(&value); err != nil {
			yield(piiscan.Sample{}, fmt.Errorf("failed to scan sample from %s: %w", col.FQDN(), err))
			return false
		}
		sample := piiscan.Sample{Column: col}
		if value != nil {
			sample.Value = *value
			sample.Valid = true
		}
		if !yield(sample, nil) {
			return false
		}
	}
	if err := rows.Err(); err != nil {
		return yield(piiscan.Sample{}, fmt.Errorf("failed to sample %s: %w", col.FQDN(), err))
	}
	return true
}
