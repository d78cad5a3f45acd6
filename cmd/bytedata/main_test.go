package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "byte.data")
	require.NoError(t, os.WriteFile(path, []byte("5\n-3\n0\n127\n-128\n"), 0644))
	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		args      func(data string) []string
		code      int
		stdout    []string
		notStdout []string
		stderr    string
		sorted    bool
	}{
		{
			name:   "missing key",
			args:   func(data string) []string { return []string{"-d", data} },
			code:   1,
			stderr: "missing search value",
		},
		{
			name:   "non numeric key",
			args:   func(data string) []string { return []string{"-d", data, "abc"} },
			code:   1,
			stderr: "invalid syntax",
		},
		{
			name:   "key above range",
			args:   func(data string) []string { return []string{"-d", data, "200"} },
			code:   1,
			stderr: "out of signed byte range",
		},
		{
			name:   "key below range",
			args:   func(data string) []string { return []string{"-d", data, "-200"} },
			code:   1,
			stderr: "out of signed byte range",
		},
		{
			name:   "negative key",
			args:   func(data string) []string { return []string{"-d", data, "-3"} },
			stdout: []string{"Value '-3' found in array at index 1", "Value '-3' found in list at index 1"},
			sorted: true,
		},
		{
			name:   "negative key before flags",
			args:   func(data string) []string { return []string{"-3", "--data", data} },
			stdout: []string{"Value '-3' found in list at index 1"},
			sorted: true,
		},
		{
			name:   "negative key after terminator",
			args:   func(data string) []string { return []string{"-d", data, "--", "-3"} },
			stdout: []string{"Value '-3' found in array at index 1"},
			sorted: true,
		},
		{
			name:      "representation override",
			args:      func(data string) []string { return []string{"-r", "btree", "-d", data, "127"} },
			stdout:    []string{"Value '127' found in btree at index 4", "Minimum value in btree: -128"},
			notStdout: []string{"in array", "in list"},
			sorted:    true,
		},
		{
			name:   "unknown representation",
			args:   func(data string) []string { return []string{"--repr=vector", "-d", data, "1"} },
			code:   1,
			stderr: "unknown representation",
		},
		{
			name:   "unknown flag",
			args:   func(data string) []string { return []string{"-x", "-d", data, "1"} },
			code:   2,
			stderr: "unknown shorthand flag",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := writeData(t)
			var stdout, stderr bytes.Buffer

			code := run(tt.args(data), &stdout, &stderr)

			assert.Equal(t, tt.code, code, "stderr: %s", stderr.String())
			for _, s := range tt.stdout {
				assert.Contains(t, stdout.String(), s)
			}
			for _, s := range tt.notStdout {
				assert.NotContains(t, stdout.String(), s)
			}
			if tt.stderr != "" {
				assert.Contains(t, stderr.String(), tt.stderr)
			}

			_, err := os.Stat(data + ".sorted")
			if tt.sorted {
				assert.NoError(t, err)
			} else {
				assert.True(t, os.IsNotExist(err), "no output may be written")
			}
		})
	}
}

func TestRunSnapshotOverride(t *testing.T) {
	data := writeData(t)
	snap := filepath.Join(t.TempDir(), "snapshot.db")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--snapshot", snap, "-d", data, "0"}, &stdout, &stderr)

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "snapshot "+snap)
	_, err := os.Stat(snap)
	assert.NoError(t, err)
}

func TestKeyLast(t *testing.T) {
	fs := newFlagSet(&options{}, io.Discard)
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"-3"}, []string{"--", "-3"}},
		{[]string{"-d", "-7", "-3"}, []string{"-d", "-7", "--", "-3"}},
		{[]string{"--data", "f", "-45"}, []string{"--data", "f", "--", "-45"}},
		{[]string{"--data=f", "-45"}, []string{"--data=f", "--", "-45"}},
		{[]string{"-45", "--", "x"}, []string{"--", "-45", "x"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keyLast(fs, tt.in), "%v", tt.in)
	}
}
