package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `connection:
  host: myhost
  port: 5433
  username: myuser
  database: mydb
  sslmode: require

scan:
  sample_size: 25
  include_schemas: [app, billing]
  exclude_schemas: [archive]
  detection_log: /var/log/piiscan/safe.jsonl
  raw_detection_log: /var/log/piiscan/raw.jsonl

timeout: 10m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "myhost", cfg.Connection.Host)
	assert.Equal(t, 5433, cfg.Connection.Port)
	assert.Equal(t, "myuser", cfg.Connection.Username)
	assert.Equal(t, "mydb", cfg.Connection.Database)
	assert.Equal(t, "require", cfg.Connection.SSLMode)
	assert.Equal(t, 25, cfg.Scan.SampleSize)
	assert.Equal(t, []string{"app", "billing"}, cfg.Scan.IncludeSchemas)
	assert.Equal(t, []string{"archive"}, cfg.Scan.ExcludeSchemas)
	assert.Equal(t, "/var/log/piiscan/safe.jsonl", cfg.Scan.DetectionLog)
	assert.Equal(t, "/var/log/piiscan/raw.jsonl", cfg.Scan.RawDetectionLog)
	assert.Equal(t, "10m", cfg.Timeout)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	content := `scan:
  sample_size: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 10, cfg.Scan.SampleSize)
	assert.Empty(t, cfg.Connection.Host)
}

func TestLoad_NotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("connection: ["), 0644))

	cfg, err := Load(dir)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
}
