package retry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgreSQLErrorClassifier_PgCodes(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		transient bool
	}{
		{"connection exception", "08006", true},
		{"insufficient resources", "53300", true},
		{"admin shutdown", "57P01", true},
		{"serialization failure", "40001", true},
		{"deadlock detected", "40P01", true},
		{"lock not available", "55P03", true},
		{"syntax error", "42601", false},
		{"undefined table", "42P01", false},
		{"unique violation", "23505", false},
		{"invalid password", "28P01", false},
	}

	classifier := NewPostgreSQLErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &pgconn.PgError{Code: tt.code, Message: tt.name}
			assert.Equal(t, tt.transient, classifier.IsTransient(err))
		})
	}
}

func TestPostgreSQLErrorClassifier_WrappedPgError(t *testing.T) {
	classifier := NewPostgreSQLErrorClassifier()
	err := fmt.Errorf("query failed: %w", &pgconn.PgError{Code: "40001"})
	assert.True(t, classifier.IsTransient(err))
}

func TestPostgreSQLErrorClassifier_MessagePatterns(t *testing.T) {
	tests := []struct {
		msg       string
		transient bool
	}{
		{"dial tcp 127.0.0.1:5432: connection refused", true},
		{"read: connection reset by peer", true},
		{"i/o timeout", true},
		{"FATAL: too many connections for role", true},
		{"unexpected EOF", true},
		{"permission denied for table users", false},
		{"column does not exist", false},
	}

	classifier := NewPostgreSQLErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.transient, classifier.IsTransient(errors.New(tt.msg)))
		})
	}
}

func TestPostgreSQLErrorClassifier_NilError(t *testing.T) {
	assert.False(t, NewPostgreSQLErrorClassifier().IsTransient(nil))
}
