package piiscan

import "sync"

// MetadataDetector classifies a column from its declared name alone.
// Implementations must be stateless and safe for reuse across scans.
type MetadataDetector interface {
	// Name identifies the detector; it is recorded as provenance on every
	// classification the detector produces.
	Name() string

	// DetectColumn returns the PII category for the column name, or ok=false
	// when the detector makes no claim about the column.
	DetectColumn(column Column) (PiiType, bool)
}

// DatumDetector classifies a column from one sampled cell value.
// The column is passed for provenance and logging only: implementations must
// not let the column name influence the result.
type DatumDetector interface {
	Name() string

	// DetectDatum returns the PII category for the sampled value, or
	// ok=false when no recognizer matches.
	DetectDatum(column Column, datum string) (PiiType, bool)
}

// The process-wide detector registries. Detectors run in registration order
// and the first match per column wins, so earlier registration means higher
// priority. Registration normally happens once at startup, before any scan.
var (
	registryMu        sync.Mutex
	metadataDetectors []MetadataDetector
	datumDetectors    []DatumDetector
)

// RegisterMetadataDetector appends a metadata-capability detector to the
// process-wide registry. There is no de-duplication and no priority
// override: callers that need a detector to take precedence must register
// it first.
func RegisterMetadataDetector(d MetadataDetector) {
	registryMu.Lock()
	defer registryMu.Unlock()
	metadataDetectors = append(metadataDetectors, d)
}

// RegisterDatumDetector appends a datum-capability detector to the
// process-wide registry, with the same ordering contract as
// RegisterMetadataDetector.
func RegisterDatumDetector(d DatumDetector) {
	registryMu.Lock()
	defer registryMu.Unlock()
	datumDetectors = append(datumDetectors, d)
}

// MetadataDetectors returns the registered metadata detectors in
// registration order. The returned slice is a copy; mutating it does not
// affect the registry.
func MetadataDetectors() []MetadataDetector {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]MetadataDetector, len(metadataDetectors))
	copy(out, metadataDetectors)
	return out
}

// DatumDetectors returns the registered datum detectors in registration
// order. The returned slice is a copy.
func DatumDetectors() []DatumDetector {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]DatumDetector, len(datumDetectors))
	copy(out, datumDetectors)
	return out
}
