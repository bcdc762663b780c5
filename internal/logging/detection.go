package logging

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

// DetectionLog implements piiscan.DetectionSink. Every successful data-scan
// detection produces two JSON records:
//
//   - a metadata-safe record (column identifier, category, detector) on the
//     safe stream
//   - a verbose record that additionally carries the raw sampled value on
//     the raw stream
//
// The raw stream contains sensitive content. It is routed separately so
// deployments can disable it or point it at a restricted file; a nil writer
// disables its stream entirely.
type DetectionLog struct {
	mu    sync.Mutex
	safe  io.Writer
	raw   io.Writer
	runID string
	now   func() time.Time
}

// detectionRecord is the safe-stream schema; rawRecord adds the sampled value.
type detectionRecord struct {
	Event    string `json:"event"`
	RunID    string `json:"run_id"`
	Time     string `json:"time"`
	Column   string `json:"column"`
	PiiType  string `json:"pii_type"`
	Detector string `json:"detector"`
}

type rawRecord struct {
	detectionRecord
	Datum string `json:"datum"`
}

// NewDetectionLog creates a DetectionLog writing safe records to safe and
// raw records to raw. Either writer may be nil to disable that stream.
// runID correlates records across streams and with persisted labels.
func NewDetectionLog(safe, raw io.Writer, runID string) *DetectionLog {
	return &DetectionLog{safe: safe, raw: raw, runID: runID, now: time.Now}
}

// Record writes one detection to both streams.
// Encoding errors are ignored: detection logging is best-effort and must
// never abort a scan.
func (l *DetectionLog) Record(column piiscan.Column, piiType piiscan.PiiType, detector, datum string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := detectionRecord{
		Event:    "deep_scan",
		RunID:    l.runID,
		Time:     l.now().UTC().Format(time.RFC3339),
		Column:   column.FQDN(),
		PiiType:  piiType.Slug(),
		Detector: detector,
	}

	if l.safe != nil {
		_ = json.NewEncoder(l.safe).Encode(rec)
	}
	if l.raw != nil {
		_ = json.NewEncoder(l.raw).Encode(rawRecord{detectionRecord: rec, Datum: datum})
	}
}
