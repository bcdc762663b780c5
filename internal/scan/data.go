package scan

import (
	"context"
	"fmt"

	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

// Data scans sampled cell values. sizing enumerates the same logical column
// set the sample producer draws from; only its text-typed columns count, and
// the progress total is text columns times sampleSize. That total is a
// deliberate overestimate: short tables and NULL-heavy columns yield fewer
// samples than sampleSize, and recomputing the exact total would cost an
// extra full pass over the data.
//
// Items with an absent value are counted as processed but never reach a
// detector and cannot be labeled. For every successful detection the sink,
// when non-nil, receives one record that it fans out to the metadata-safe
// and raw-value streams.
func Data(
	ctx context.Context,
	catalog piiscan.Catalog,
	detectors []piiscan.DatumDetector,
	sizing piiscan.ColumnSeq,
	work piiscan.SampleSeq,
	sampleSize int,
	sink piiscan.DetectionSink,
	opts Options,
) (Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	if sampleSize <= 0 {
		sampleSize = piiscan.DefaultSampleSize
	}

	textColumns, err := countTextColumns(sizing)
	if err != nil {
		return Summary{}, fmt.Errorf("sizing enumeration: %w: %w", piiscan.ErrEnumerationFailed, err)
	}
	total := textColumns * sampleSize

	var summary Summary
	for sample, err := range work {
		if err != nil {
			return summary, fmt.Errorf("work enumeration: %w: %w", piiscan.ErrEnumerationFailed, err)
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		summary.Processed++
		column := sample.Column
		logger.Verbose("Scanning column name %s", column.FQDN())

		if !sample.Valid {
			if opts.OnProgress != nil {
				opts.OnProgress(ProgressEvent{Current: summary.Processed, Total: total, Unit: "datum"})
			}
			continue
		}

		for _, detector := range detectors {
			piiType, ok := detector.DetectDatum(column, sample.Value)
			if !ok {
				continue
			}
			if err := catalog.SetColumnPiiType(ctx, column, piiType, detector.Name()); err != nil {
				return summary, fmt.Errorf("%w: column %s: %w", piiscan.ErrCatalogWrite, column.FQDN(), err)
			}
			summary.Labeled++
			logger.Verbose("%s has %s", column.FQDN(), piiType)
			if sink != nil {
				sink.Record(column, piiType, detector.Name(), sample.Value)
			}
			break
		}

		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{Current: summary.Processed, Total: total, Unit: "datum"})
		}
	}

	logger.Info("Columns Scanned: %d, Columns Labeled: %d", summary.Processed, summary.Labeled)
	return summary, nil
}

// countTextColumns drains a sizing enumeration and counts the columns
// eligible for value sampling.
func countTextColumns(seq piiscan.ColumnSeq) (int, error) {
	n := 0
	for column, err := range seq {
		if err != nil {
			return 0, err
		}
		if column.IsText() {
			n++
		}
	}
	return n, nil
}
