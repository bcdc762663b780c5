// Package retry provides connection retry with exponential backoff.
//
// Scans often run against busy replicas; transient connection failures
// (pool exhaustion, failovers, brief network blips) should not abort a scan
// before it starts. The Executor retries an operation while the classifier
// deems its error transient, waiting an exponentially growing, jittered
// delay between attempts.
//
// Only connection establishment is retried. Faults during a running scan
// propagate by design.
package retry
