package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTranscript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strategy.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "LOG_FORMAT", "ON_INVALID", "OUTPUT_LOCALE", "METRICS_TEXTFILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestRunPrintsBothTotals(t *testing.T) {
	clearEnv(t)
	path := writeTranscript(t, "A Y\nB X\nC Z\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t,
		"Final score from tourney: 15\n"+
			"Final score from tourney with correct encoding: 12\n",
		stdout.String())
}

func TestRunAbortsOnInvalidRecord(t *testing.T) {
	clearEnv(t)
	path := writeTranscript(t, "A Y\nA Q\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)

	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "line 2")
}

func TestRunSkipWithTallyAndMetrics(t *testing.T) {
	clearEnv(t)
	path := writeTranscript(t, "A Y\nA Q\nB X\nC Z\n")
	metricsPath := filepath.Join(t.TempDir(), "rps.prom")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-on-invalid", "skip", "-tally", "-metrics-file", metricsPath, path}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "Final score from tourney: 15\n")
	assert.Contains(t, stdout.String(), "skipped: 1 of 4 lines\n")
	assert.Contains(t, stderr.String(), "skipping record")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `rps_points_total{strategy="corrected"} 12`)
}

func TestRunUsage(t *testing.T) {
	clearEnv(t)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitUsage, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage")

	stderr.Reset()
	assert.Equal(t, exitUsage, run([]string{"-on-invalid", "ignore", "x.txt"}, &stdout, &stderr))
}

func TestRunMissingFile(t *testing.T) {
	clearEnv(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.txt")}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "failed to open transcript")
}

func TestRunFlagOverridesInvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ON_INVALID", "bogus")
	path := writeTranscript(t, "A Y\nB X\nC Z\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-on-invalid", "skip", path}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "Final score from tourney: 15\n")

	stdout.Reset()
	stderr.Reset()
	assert.Equal(t, exitUsage, run([]string{path}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "ON_INVALID")
}

func TestRunMetricsWriteFailure(t *testing.T) {
	clearEnv(t)
	path := writeTranscript(t, "A Y\n")
	metricsPath := filepath.Join(t.TempDir(), "missing-dir", "rps.prom")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-metrics-file", metricsPath, path}, &stdout, &stderr)

	assert.Equal(t, exitError, code)
	assert.Contains(t, stdout.String(), "Final score from tourney: 8\n")
	assert.Contains(t, stderr.String(), "failed to write metrics")
}
