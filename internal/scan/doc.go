// Package scan implements the two scanning drivers.
//
// Metadata runs metadata-capability detectors over an enumerated stream of
// columns; Data runs datum-capability detectors over sampled cell values.
// Both drivers first drain a sizing enumeration to compute a progress total,
// then iterate the work enumeration, apply detectors in registration order,
// and persist the first matching classification per column through the
// catalog collaborator.
//
// The drivers are single-threaded, synchronous consumers of lazy producers.
// They hold no classification state of their own and do not contain
// failures: a detector or catalog fault aborts the scan, and a restart
// re-scans from the beginning of the enumeration.
package scan
