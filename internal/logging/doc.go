// Package logging provides concrete implementations of the piiscan.Logger
// interface plus the detection log channels used by data scans.
//
// Available implementations:
//   - ConsoleLogger: writes formatted messages to a writer (stderr by default)
//   - NullLogger: discards all messages (useful for testing)
//   - DetectionLog: structured JSON records for successful detections, split
//     into a metadata-safe stream and a raw-value stream
//
// All implementations are safe for concurrent use by multiple goroutines.
package logging
