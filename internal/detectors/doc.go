// Package detectors provides the built-in PII detectors.
//
// Two detectors ship with piiscan:
//   - NameRegexDetector (metadata capability): matches column names against
//     an ordered table of per-category patterns
//   - DatumRegexDetector (datum capability): matches sampled cell values
//     against a fixed sequence of common PII recognizers
//
// Detection is rule-based and first-match-wins. Precedence within a detector
// is encoded by table order; precedence between detectors is encoded by
// registration order (see RegisterBuiltins).
package detectors
