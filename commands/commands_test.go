package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with the given arguments against a database under
// dir, capturing combined output.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)

	full := append([]string{
		"--db", filepath.Join(dir, "tasktally.db"),
		"--timezone", "UTC",
	}, args...)
	rootCmd.SetArgs(full)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestActivityLogReportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKTALLY_LOG_FILE", filepath.Join(dir, "app.log"))

	out, err := execute(t, dir, "activity", "add", "coding", "work")
	require.NoError(t, err)
	assert.Contains(t, out, "Added activity")
	assert.Contains(t, out, "coding (work)")

	out, err = execute(t, dir, "log", "add",
		"--activity", "coding",
		"--start", "2024-03-01 09:00",
		"--stop", "2024-03-01 10:30")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged 01:30:00 against coding")

	out, err = execute(t, dir, "report", "--grain", "daily", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Date,Day,Duration")
	assert.Contains(t, out, "2024-03-01,Friday,01:30:00")
}

func TestChartReportsFractionalHours(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKTALLY_LOG_FILE", filepath.Join(dir, "app.log"))

	_, err := execute(t, dir, "activity", "add", "reading")
	require.NoError(t, err)

	_, err = execute(t, dir, "log", "add",
		"--activity", "reading",
		"--start", "2024-03-01 09:00",
		"--stop", "2024-03-01 10:30")
	require.NoError(t, err)

	out, err := execute(t, dir, "chart", "--days", "all", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Date,Day,Hours")
	assert.Contains(t, out, "2024-03-01,Friday,1.50")
}

func TestReportRejectsUnknownGrain(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKTALLY_LOG_FILE", filepath.Join(dir, "app.log"))

	_, err := execute(t, dir, "report", "--grain", "hourly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown grain")
}

func TestLogAddUnknownActivity(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKTALLY_LOG_FILE", filepath.Join(dir, "app.log"))

	_, err := execute(t, dir, "log", "add", "--activity", "nonexistent", "--minutes", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no activity named")
}
