package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dstore-labs/piiscan/internal/catalog"
	"github.com/dstore-labs/piiscan/internal/config"
	"github.com/dstore-labs/piiscan/internal/db"
	"github.com/dstore-labs/piiscan/internal/detectors"
	"github.com/dstore-labs/piiscan/internal/logging"
	"github.com/dstore-labs/piiscan/internal/scan"
	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Classify columns by sampled values",
	Long: `Data scan samples cell values from text-typed columns and matches
them against PII value patterns (phone numbers, emails, credit cards, street
addresses, SSNs, zip codes, PO boxes, KTP numbers). A single matching value
is enough to classify the whole column.

Every detection can be logged to two separate streams:
  --detection-log      metadata-safe records (column, category, detector)
  --raw-detection-log  the same records plus the matched raw value

The raw stream contains sensitive data. Route it to a restricted file, or
omit the flag to disable it.

Examples:
  # Sample 100 values per text column (default)
  piiscan scan data -d mydb

  # Smaller sample, with a safe audit log
  piiscan scan data -d mydb --sample-size 25 --detection-log scan.jsonl`,
	Args: cobra.NoArgs,
	RunE: runDataScan,
}

func init() {
	scanCmd.AddCommand(dataCmd)

	dataCmd.Flags().IntVar(&scanFlags.sampleSize, "sample-size", 0,
		"Number of cell values sampled per text column (default 100)\n"+
			"Precedence: --sample-size > piiscan.yaml scan.sample_size > 100")
	dataCmd.Flags().StringVar(&scanFlags.detectionLog, "detection-log", "",
		"Append metadata-safe detection records (JSON lines) to this file")
	dataCmd.Flags().StringVar(&scanFlags.rawDetectionLog, "raw-detection-log", "",
		"Append detection records INCLUDING RAW VALUES to this file\n"+
			"Contains sensitive data; restrict file permissions accordingly")
}

func runDataScan(cmd *cobra.Command, args []string) error {
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

	logger.Verbose("Starting data scan of %s (run %s)", config.DatabaseName, cat.RunID())

	sink, closeSink, err := buildDetectionSink(cat.RunID().String())
	if err != nil {
		return err
	}
	defer closeSink()

	filter := catalog.SchemaFilter{
		Include: config.IncludeSchemas,
		Exclude: config.ExcludeSchemas,
	}

	opts, finishProgress := progressOptions(scan.Options{Logger: logger})

	_, err = scan.Data(ctx,
		cat,
		piiscan.DatumDetectors(),
		cat.Columns(ctx, filter),
		cat.Samples(ctx, filter, config.SampleSize),
		config.SampleSize,
		sink,
		opts,
	)
	finishProgress()
	if err != nil {
		return fmt.Errorf("data scan failed: %w", err)
	}

	return nil
}

// buildDetectionSink opens the detection log streams requested via flags or
// piiscan.yaml. Returns a nil sink when neither stream is configured.
func buildDetectionSink(runID string) (piiscan.DetectionSink, func(), error) {
	safePath := scanFlags.detectionLog
	rawPath := scanFlags.rawDetectionLog

	if projectCfg, err := config.Load("."); err == nil {
		if safePath == "" {
			safePath = projectCfg.Scan.DetectionLog
		}
		if rawPath == "" {
			rawPath = projectCfg.Scan.RawDetectionLog
		}
	}

	if safePath == "" && rawPath == "" {
		return nil, func() {}, nil
	}

	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	openLog := func(path string) (io.Writer, error) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open detection log %s: %w", path, err)
		}
		closers = append(closers, f)
		return f, nil
	}

	var safe, raw io.Writer
	var err error
	if safePath != "" {
		if safe, err = openLog(safePath); err != nil {
			closeAll()
			return nil, nil, err
		}
	}
	if rawPath != "" {
		if raw, err = openLog(rawPath); err != nil {
			closeAll()
			return nil, nil, err
		}
	}

	return logging.NewDetectionLog(safe, raw, runID), closeAll, nil
}
