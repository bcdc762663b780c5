package piiscan

import "context"

// Catalog is the persistence collaborator that receives classifications.
// Implementations must make SetColumnPiiType idempotent under re-invocation
// with the same arguments: a rerun after a crash may re-write labels that
// were already persisted.
type Catalog interface {
	// SetColumnPiiType records that column holds PII of the given category.
	// piiPlugin names the detector that produced the classification.
	SetColumnPiiType(ctx context.Context, column Column, piiType PiiType, piiPlugin string) error
}

// DetectionSink receives one record per successful data-scan detection.
// Implementations decide how to fan the record out; the bundled
// logging.DetectionLog writes a metadata-safe stream and a separately
// routable raw-value stream.
type DetectionSink interface {
	Record(column Column, piiType PiiType, detector string, datum string)
}
