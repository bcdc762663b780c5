package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(false, &buf)

	logger.Info("Columns Scanned: %d, Columns Labeled: %d", 10, 3)

	assert.Equal(t, "Columns Scanned: 10, Columns Labeled: 3\n", buf.String())
}

func TestConsoleLogger_VerboseSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(false, &buf)

	logger.Verbose("scanning %s", "public.users.email")

	assert.Empty(t, buf.String())
}

func TestConsoleLogger_VerboseEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(true, &buf)

	logger.Verbose("scanning %s", "public.users.email")

	assert.Equal(t, "[VERBOSE] scanning public.users.email\n", buf.String())
}

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(false, &buf)

	logger.Error("scan failed: %v", "boom")

	assert.Equal(t, "[ERROR] scan failed: boom\n", buf.String())
}

func TestConsoleLogger_NoArgsFormatNotInterpreted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(false, &buf)

	// A literal percent in a message without args must not be mangled.
	logger.Info("progress 50% done")

	assert.Equal(t, "progress 50% done\n", buf.String())
}
