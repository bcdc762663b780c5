package piiscan_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstore-labs/piiscan/pkg/piiscan"
)

func TestPiiType_Identity(t *testing.T) {
	assert.Equal(t, "Credit Card", piiscan.CreditCard.Name())
	assert.Equal(t, "credit_card", piiscan.CreditCard.Slug())
	assert.False(t, piiscan.CreditCard.IsZero())
	assert.True(t, piiscan.PiiType{}.IsZero())

	custom := piiscan.NewPiiType("Credit Card", "credit_card")
	assert.Equal(t, piiscan.CreditCard, custom)
}

func TestColumn_FQDN(t *testing.T) {
	col := piiscan.Column{Schema: "public", Table: "users", Name: "email"}
	assert.Equal(t, "public.users.email", col.FQDN())
}

func TestColumn_IsText(t *testing.T) {
	tests := []struct {
		dataType string
		want     bool
	}{
		{"text", true},
		{"character varying", true},
		{"VARCHAR", true},
		{"citext", true},
		{"integer", false},
		{"timestamp with time zone", false},
		{"bytea", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.dataType, func(t *testing.T) {
			col := piiscan.Column{DataType: tt.dataType}
			assert.Equal(t, tt.want, col.IsText())
		})
	}
}

func TestScanConfig_Validate_Valid(t *testing.T) {
	cfg := piiscan.ScanConfig{
		ConnectionString: "postgresql://user@localhost:5432/mydb",
		SampleSize:       piiscan.DefaultSampleSize,
		Timeout:          time.Minute,
	}
	require.NoError(t, cfg.Validate())
}

func TestScanConfig_Validate_MissingConnectionString(t *testing.T) {
	cfg := piiscan.ScanConfig{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, piiscan.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "ConnectionString")
}

func TestScanConfig_Validate_CollectsAllFailures(t *testing.T) {
	cfg := piiscan.ScanConfig{
		SampleSize: -1,
		Timeout:    -time.Second,
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ConnectionString")
	assert.Contains(t, err.Error(), "sample size")
	assert.Contains(t, err.Error(), "timeout")
}
