package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dstore-labs/piiscan/internal/catalog"
	"github.com/dstore-labs/piiscan/internal/db"
	"github.com/dstore-labs/piiscan/internal/detectors"
	"github.com/dstore-labs/piiscan/internal/logging"
	"github.com/dstore-labs/piiscan/internal/scan"
	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Classify columns by name",
	Long: `Metadata scan matches every column name in the target database
against known PII naming patterns (english and indonesian). It never reads
table data, so it is safe to run against large or sensitive tables.

The first matching detector wins for each column. Matches are written to the
piiscan_label table; re-running the scan rewrites the same rows.

Examples:
  # Scan all schemas of 'mydb'
  piiscan scan metadata -d mydb

  # Scan only the 'app' schema
  piiscan scan metadata -d mydb --include-schema app`,
	Args: cobra.NoArgs,
	RunE: runMetadataScan,
}

func init() {
	scanCmd.AddCommand(metadataCmd)
}

func runMetadataScan(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	config, err := buildScanConfig(cmd, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	detectors.RegisterBuiltins()

	ctx, cancel := scanContext(config.Timeout)
	defer cancel()

	pool, err := db.NewConnector(config.ConnectionString).Connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	cat := catalog.NewPostgres(pool, logger)
	if err := cat.EnsureLabelTable(ctx); err != nil {
		return err
	}

	logger.Verbose("Starting metadata scan of %s (run %s)", config.DatabaseName, cat.RunID())

	filter := catalog.SchemaFilter{
		Include: config.IncludeSchemas,
		Exclude: config.ExcludeSchemas,
	}

	opts, finishProgress := progressOptions(scan.Options{Logger: logger})

	_, err = scan.Metadata(ctx,
		cat,
		piiscan.MetadataDetectors(),
		cat.Columns(ctx, filter),
		cat.Columns(ctx, filter),
		opts,
	)
	finishProgress()
	if err != nil {
		return fmt.Errorf("metadata scan failed: %w", err)
	}

	return nil
}
