package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/append-results/internal/engine"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRootAppendsFromWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, "bench.tsv", "id\tscore\n1\t0.5\n2\t0.7\n")
	writeFile(t, "_modelX_result.txt", "yes\nno\n")

	logs, err := run(t, "bench.tsv", "modelX")
	require.NoError(t, err)
	assert.Contains(t, logs, "Appended results")

	data, err := os.ReadFile(filepath.Join(dir, "bench.tsv"))
	require.NoError(t, err)
	assert.Equal(t, "id\tscore\tmodelX\r\n1\t0.5\tyes\r\n2\t0.7\tno\r\n", string(data))
}

func TestRootResultsDirFlag(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.Mkdir("results", 0o755))
	writeFile(t, "bench.tsv", "id\n1\n")
	writeFile(t, filepath.Join("results", "_m_result.txt"), "r\n")

	_, err := run(t, "bench.tsv", "m", "--results-dir", "results")
	require.NoError(t, err)

	_, err = run(t, "bench.tsv", "m2")
	assert.ErrorIs(t, err, engine.ErrResultsFileNotFound)
}

func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, "bench.tsv", "id\n1\n")
	writeFile(t, "_m_result.txt", "r\n")
	writeFile(t, "custom.yaml", "crlf: false\natomic_write: false\nhistory_file: history.jsonl\n")

	_, err := run(t, "--config", "custom.yaml", "bench.tsv", "m")
	require.NoError(t, err)

	data, err := os.ReadFile("bench.tsv")
	require.NoError(t, err)
	assert.Equal(t, "id\tm\n1\tr\n", string(data))

	_, err = os.Stat("history.jsonl")
	assert.NoError(t, err)
}

func TestRootErrors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, "bench.tsv", "id\tm\n1\tx\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no args", args: []string{}, want: "accepts 2 arg(s)"},
		{name: "one arg", args: []string{"bench.tsv"}, want: "accepts 2 arg(s)"},
		{name: "duplicate", args: []string{"bench.tsv", "m"}, want: "Column for model 'm' already exists"},
		{name: "missing config", args: []string{"--config", "nope.yaml", "bench.tsv", "n"}, want: "failed to read config file"},
		{name: "bad log level", args: []string{"--config", "bad.yaml", "bench.tsv", "n"}, want: "invalid log_level"},
	}
	writeFile(t, "bad.yaml", "log_level: loud\n")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	data, err := os.ReadFile("bench.tsv")
	require.NoError(t, err)
	assert.Equal(t, "id\tm\n1\tx\n", string(data))
}

func TestRootVerboseLogsDebug(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, "bench.tsv", "id\n1\n")
	writeFile(t, "_m_result.txt", "r\n")

	logs, err := run(t, "-v", "bench.tsv", "m")
	require.NoError(t, err)
	assert.Contains(t, logs, "level=DEBUG")
	assert.Contains(t, logs, "Loaded results")
}
