package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstore-labs/piiscan/internal/logging"
	"github.com/dstore-labs/piiscan/internal/testinfra"
	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

// startCatalog spins up a disposable PostgreSQL container with a small
// fixture schema and returns a ready catalog over it.
func startCatalog(t *testing.T) (*Postgres, *pgxpool.Pool) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	ctr, err := testinfra.StartPostgres(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(context.Background()) })

	pool, err := pgxpool.New(ctx, ctr.ConnString)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `
		CREATE TABLE users (
			id         integer PRIMARY KEY,
			email      text,
			full_name  varchar(100),
			created_at timestamptz
		)`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, email, full_name) VALUES
			(1, 'jane@example.com', 'Jane Doe'),
			(2, NULL, 'John Roe')`)
	require.NoError(t, err)

	cat := NewPostgres(pool, logging.NewNullLogger())
	require.NoError(t, cat.EnsureLabelTable(ctx))
	return cat, pool
}

func TestPostgres_ColumnsEnumeration(t *testing.T) {
	cat, _ := startCatalog(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var columns []piiscan.Column
	for col, err := range cat.Columns(ctx, SchemaFilter{}) {
		require.NoError(t, err)
		columns = append(columns, col)
	}

	require.Len(t, columns, 4)
	// Ordered by ordinal position within the table.
	assert.Equal(t, "id", columns[0].Name)
	assert.Equal(t, "email", columns[1].Name)
	assert.Equal(t, "text", columns[1].DataType)
	assert.Equal(t, "full_name", columns[2].Name)
	assert.Equal(t, "character varying", columns[2].DataType)

	// The label table never shows up in its own enumeration.
	for _, col := range columns {
		assert.NotEqual(t, LabelTable, col.Table)
	}
}

func TestPostgres_ColumnsReEnumerable(t *testing.T) {
	cat, _ := startCatalog(t)
	ctx := context.Background()

	seq := cat.Columns(ctx, SchemaFilter{})

	count := func() int {
		n := 0
		for _, err := range seq {
			require.NoError(t, err)
			n++
		}
		return n
	}

	first := count()
	second := count()
	assert.Equal(t, first, second, "ranging twice must re-run the enumeration")
	assert.Equal(t, 4, first)
}

func TestPostgres_SchemaFilter(t *testing.T) {
	cat, pool := startCatalog(t)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `CREATE SCHEMA archive`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `CREATE TABLE archive.old_users (email text)`)
	require.NoError(t, err)

	count := func(filter SchemaFilter) int {
		n := 0
		for _, err := range cat.Columns(ctx, filter) {
			require.NoError(t, err)
			n++
		}
		return n
	}

	assert.Equal(t, 5, count(SchemaFilter{}))
	assert.Equal(t, 1, count(SchemaFilter{Include: []string{"archive"}}))
	assert.Equal(t, 4, count(SchemaFilter{Exclude: []string{"archive"}}))
}

func TestPostgres_Samples(t *testing.T) {
	cat, _ := startCatalog(t)
	ctx := context.Background()

	var samples []piiscan.Sample
	for s, err := range cat.Samples(ctx, SchemaFilter{}, 10) {
		require.NoError(t, err)
		samples = append(samples, s)
	}

	// Two text columns (email, full_name) with two rows each; id and
	// created_at are not sampled.
	require.Len(t, samples, 4)
	for _, s := range samples {
		assert.True(t, s.Column.IsText())
	}

	byColumn := map[string][]piiscan.Sample{}
	for _, s := range samples {
		byColumn[s.Column.Name] = append(byColumn[s.Column.Name], s)
	}

	emails := byColumn["email"]
	require.Len(t, emails, 2)
	assert.True(t, emails[0].Valid)
	assert.Equal(t, "jane@example.com", emails[0].Value)
	assert.False(t, emails[1].Valid, "NULL cells are yielded with Valid=false")
}

func TestPostgres_SetColumnPiiType_Idempotent(t *testing.T) {
	cat, _ := startCatalog(t)
	ctx := context.Background()

	column := piiscan.Column{Schema: "public", Table: "users", Name: "email", DataType: "text"}

	require.NoError(t, cat.SetColumnPiiType(ctx, column, piiscan.Email, "ColumnNameRegexDetector"))
	require.NoError(t, cat.SetColumnPiiType(ctx, column, piiscan.Email, "ColumnNameRegexDetector"))

	labels, err := cat.Labels(ctx)
	require.NoError(t, err)
	require.Len(t, labels, 1, "re-running a scan rewrites the same row")

	assert.Equal(t, "public.users.email", labels[0].Column.FQDN())
	assert.Equal(t, "email", labels[0].PiiType)
	assert.Equal(t, "ColumnNameRegexDetector", labels[0].PiiPlugin)
	assert.Equal(t, cat.RunID(), labels[0].ScanRunID)
	assert.WithinDuration(t, time.Now(), labels[0].DetectedAt, time.Minute)
}

func TestPostgres_ReclassificationOverwrites(t *testing.T) {
	cat, _ := startCatalog(t)
	ctx := context.Background()

	column := piiscan.Column{Schema: "public", Table: "users", Name: "email"}

	require.NoError(t, cat.SetColumnPiiType(ctx, column, piiscan.UserName, "ColumnNameRegexDetector"))
	require.NoError(t, cat.SetColumnPiiType(ctx, column, piiscan.Email, "DatumRegexDetector"))

	labels, err := cat.Labels(ctx)
	require.NoError(t, err)
	require.Len(t, labels, 1)
	assert.Equal(t, "email", labels[0].PiiType)
	assert.Equal(t, "DatumRegexDetector", labels[0].PiiPlugin)
}
