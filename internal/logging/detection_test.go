package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

var detectionColumn = piiscan.Column{Schema: "public", Table: "users", Name: "contact", DataType: "text"}

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestDetectionLog_SafeStreamOmitsDatum(t *testing.T) {
	var safe, raw bytes.Buffer
	log := NewDetectionLog(&safe, &raw, "run-1")
	log.now = fixedClock

	log.Record(detectionColumn, piiscan.Email, "DatumRegexDetector", "jane@example.com")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(safe.Bytes(), &rec))

	assert.Equal(t, "deep_scan", rec["event"])
	assert.Equal(t, "run-1", rec["run_id"])
	assert.Equal(t, "2025-06-01T12:00:00Z", rec["time"])
	assert.Equal(t, "public.users.contact", rec["column"])
	assert.Equal(t, "email", rec["pii_type"])
	assert.Equal(t, "DatumRegexDetector", rec["detector"])

	_, hasDatum := rec["datum"]
	assert.False(t, hasDatum, "safe stream must never carry the raw value")
}

func TestDetectionLog_RawStreamCarriesDatum(t *testing.T) {
	var safe, raw bytes.Buffer
	log := NewDetectionLog(&safe, &raw, "run-1")
	log.now = fixedClock

	log.Record(detectionColumn, piiscan.Email, "DatumRegexDetector", "jane@example.com")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(raw.Bytes(), &rec))

	assert.Equal(t, "jane@example.com", rec["datum"])
	assert.Equal(t, "public.users.contact", rec["column"])
}

func TestDetectionLog_NilWriterDisablesStream(t *testing.T) {
	var safe bytes.Buffer
	log := NewDetectionLog(&safe, nil, "run-1")

	log.Record(detectionColumn, piiscan.Phone, "DatumRegexDetector", "555-123-4567")

	assert.NotEmpty(t, safe.Bytes())
}

func TestDetectionLog_BothStreamsDisabled(t *testing.T) {
	log := NewDetectionLog(nil, nil, "run-1")

	// Must not panic.
	log.Record(detectionColumn, piiscan.Phone, "DatumRegexDetector", "555-123-4567")
}

func TestDetectionLog_OneLinePerDetection(t *testing.T) {
	var safe bytes.Buffer
	log := NewDetectionLog(&safe, nil, "run-1")

	log.Record(detectionColumn, piiscan.Email, "DatumRegexDetector", "a@example.com")
	log.Record(detectionColumn, piiscan.Phone, "DatumRegexDetector", "555-123-4567")

	lines := bytes.Split(bytes.TrimSpace(safe.Bytes()), []byte("\n"))
	assert.Len(t, lines, 2)
}
