package scan

import (
	"context"
	"sync"

	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

// mockCatalog records every write and can be primed to fail.
type mockCatalog struct {
	mu     sync.Mutex
	writes []catalogWrite
	err    error
}

type catalogWrite struct {
	column    piiscan.Column
	piiType   piiscan.PiiType
	piiPlugin string
}

func (m *mockCatalog) SetColumnPiiType(_ context.Context, column piiscan.Column, piiType piiscan.PiiType, piiPlugin string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.writes = append(m.writes, catalogWrite{column: column, piiType: piiType, piiPlugin: piiPlugin})
	return nil
}

// mockMetadataDetector claims columns whose name appears in matches and
// counts how often it was consulted.
type mockMetadataDetector struct {
	name    string
	matches map[string]piiscan.PiiType
	calls   int
}

func (m *mockMetadataDetector) Name() string { return m.name }

func (m *mockMetadataDetector) DetectColumn(column piiscan.Column) (piiscan.PiiType, bool) {
	m.calls++
	piiType, ok := m.matches[column.Name]
	return piiType, ok
}

// mockDatumDetector claims values present in matches.
type mockDatumDetector struct {
	name    string
	matches map[string]piiscan.PiiType
	calls   int
}

func (m *mockDatumDetector) Name() string { return m.name }

func (m *mockDatumDetector) DetectDatum(_ piiscan.Column, datum string) (piiscan.PiiType, bool) {
	m.calls++
	piiType, ok := m.matches[datum]
	return piiType, ok
}

// mockSink collects detection records.
type mockSink struct {
	records []sinkRecord
}

type sinkRecord struct {
	column   piiscan.Column
	piiType  piiscan.PiiType
	detector string
	datum    string
}

func (m *mockSink) Record(column piiscan.Column, piiType piiscan.PiiType, detector, datum string) {
	m.records = append(m.records, sinkRecord{column: column, piiType: piiType, detector: detector, datum: datum})
}

// columnSeq builds a re-enumerable sequence from a slice; err, when
// non-nil, is yielded after the slice is exhausted.
func columnSeq(columns []piiscan.Column, err error) piiscan.ColumnSeq {
	return func(yield func(piiscan.Column, error) bool) {
		for _, c := range columns {
			if !yield(c, nil) {
				return
			}
		}
		if err != nil {
			yield(piiscan.Column{}, err)
		}
	}
}

func sampleSeq(samples []piiscan.Sample, err error) piiscan.SampleSeq {
	return func(yield func(piiscan.Sample, error) bool) {
		for _, s := range samples {
			if !yield(s, nil) {
				return
			}
		}
		if err != nil {
			yield(piiscan.Sample{}, err)
		}
	}
}
