package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// testConfig пишет конфигурацию с логами в dir/logs и возвращает путь к ней
func testConfig(t *testing.T, dir string) string {
	t.Helper()
	return writeFile(t, dir, "enhance.yaml", fmt.Sprintf(`
logging:
  level: debug
  console_level: error
  dir: %s
  components:
    batch: warn
`, filepath.Join(dir, "logs")))
}

func readLogs(t *testing.T, dir string) string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "logs", "*.log"))
	require.NoError(t, err)
	var all bytes.Buffer
	for _, f := range files {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		all.Write(data)
	}
	return all.String()
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage: vecctl")

	assert.Equal(t, 2, run([]string{"-bogus"}, &stdout, &stderr))
}

func TestRun_MissingJob(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	code := run([]string{"-config", testConfig(t, dir), "-job", filepath.Join(dir, "none.yaml")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, readLogs(t, dir), "[ERROR] [vecctl] read job")
}

func TestRun_BadComponentLevel(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "enhance.yaml", "logging:\n  components:\n    batch: shout\n")
	job := writeFile(t, dir, "job.yaml", "steps: []\n")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-config", cfg, "-job", job}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "logging.components.batch")
}

func TestRun_Job(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	metrics := filepath.Join(dir, "batch.prom")

	ok := writeFile(t, dir, "ok.yaml", `
vectors: {a: [1, -3, 2], b: [3, 2, -1]}
steps:
  - {op: cross, args: [a, b]}
`)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfg, "-job", ok, "-metrics-file", metrics}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "#0 cross = (-1, 7, 11)\n", stdout.String())

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `batch_steps_total{op="cross"} 1`)

	failing := writeFile(t, dir, "failing.yaml", `
vectors: {zero: [0, 0, 0]}
steps:
  - {op: normalize, args: [zero]}
`)
	stdout.Reset()
	code = run([]string{"-config", cfg, "-job", failing}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "#0 normalize: error:")

	logs := readLogs(t, dir)
	assert.Contains(t, logs, "[WARN] [vecctl] 1 of 1 steps failed")
	assert.NotContains(t, logs, "[INFO] [batch]", "batch понижен до warn через logging.components")
}
