package scan

import (
	"context"
	"fmt"

	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

// Summary reports what a completed scan pass did.
type Summary struct {
	// Processed is the number of work items consumed.
	Processed int

	// Labeled is the number of columns that received a classification.
	Labeled int
}

// Options carries the cross-cutting collaborators shared by both drivers.
type Options struct {
	// Logger receives the operational summary. Defaults to a no-op when nil.
	Logger piiscan.Logger

	// OnProgress, when non-nil, is called after every processed work item.
	OnProgress ProgressFunc
}

// Metadata scans column names. sizing and work must be two independently
// producible enumerations of the same logical column set: sizing is fully
// drained first to compute the progress total, then work is iterated once.
//
// For each column, detectors are applied in order; the first detector that
// returns a classification wins, the label is written through the catalog,
// and the remaining detectors are skipped for that column. Columns that no
// detector claims are counted but not labeled.
//
// Detector and catalog faults are not contained: the scan aborts and labels
// already written stay persisted.
func Metadata(
	ctx context.Context,
	catalog piiscan.Catalog,
	detectors []piiscan.MetadataDetector,
	sizing piiscan.ColumnSeq,
	work piiscan.ColumnSeq,
	opts Options,
) (Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	total, err := countColumns(sizing)
	if err != nil {
		return Summary{}, fmt.Errorf("sizing enumeration: %w: %w", piiscan.ErrEnumerationFailed, err)
	}

	var summary Summary
	for column, err := range work {
		if err != nil {
			return summary, fmt.Errorf("work enumeration: %w: %w", piiscan.ErrEnumerationFailed, err)
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		summary.Processed++
		logger.Verbose("Scanning column name %s", column.FQDN())

		for _, detector := range detectors {
			piiType, ok := detector.DetectColumn(column)
			if !ok {
				continue
			}
			if err := catalog.SetColumnPiiType(ctx, column, piiType, detector.Name()); err != nil {
				return summary, fmt.Errorf("%w: column %s: %w", piiscan.ErrCatalogWrite, column.FQDN(), err)
			}
			summary.Labeled++
			break
		}

		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{Current: summary.Processed, Total: total, Unit: "columns"})
		}
	}

	logger.Info("Columns Scanned: %d, Columns Labeled: %d", summary.Processed, summary.Labeled)
	return summary, nil
}

// countColumns drains a sizing enumeration solely to count it.
func countColumns(seq piiscan.ColumnSeq) (int, error) {
	n := 0
	for _, err := range seq {
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

// nopLogger keeps the drivers nil-safe without forcing callers to wire a logger.
type nopLogger struct{}

func (nopLogger) Verbose(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Error(string, ...interface{})   {}
