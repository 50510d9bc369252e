package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{
			name: "json",
			args: []string{filepath.Join("testdata", "test.in.json")},
			want: "synonyms\ndifferent\nsynonyms\nsynonyms\ndifferent\nno words\n",
		},
		{
			name: "parallel",
			args: []string{"-j", "4", filepath.Join("testdata", "test.in.json")},
			want: "synonyms\ndifferent\nsynonyms\nsynonyms\ndifferent\nno words\n",
		},
		{
			name: "jsonc",
			args: []string{"--format", "jsonc", filepath.Join("testdata", "cases.jsonc")},
			want: "synonyms\ndifferent\n",
		},
		{
			name: "yaml",
			args: []string{"-v", filepath.Join("testdata", "cases.yaml")},
			want: "synonyms\ndifferent\nsynonyms\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.NoError(t, run(tc.args, &stdout, &stderr))
			assert.Equal(t, tc.want, stdout.String())
		})
	}
}

func TestRunLogsAdvisoryMismatch(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{filepath.Join("testdata", "cases.jsonc")}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "advisory count mismatch")
	assert.Contains(t, stderr.String(), "T is 3 but 1 test cases given")
}

func TestRunVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{filepath.Join("testdata", "test.in.json")}, &stdout, &stderr))
	assert.NotContains(t, stderr.String(), "analysis done")

	stderr.Reset()
	require.NoError(t, run([]string{"--verbose", filepath.Join("testdata", "test.in.json")}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "analysis done")
	assert.Contains(t, stderr.String(), "answers=6")
}

func TestRunOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "answers.txt")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-o", out, filepath.Join("testdata", "cases.yaml")}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "synonyms\ndifferent\nsynonyms\n", string(b))
}

func TestRunErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "bad format", args: []string{"--format", "xml", filepath.Join("testdata", "test.in.json")}},
		{name: "missing file", args: []string{filepath.Join("testdata", "nope.json")}},
		{name: "missing field", args: []string{filepath.Join("testdata", "missing.json")}},
		{name: "bad output", args: []string{"-o", filepath.Join(t.TempDir(), "no", "such", "dir"), filepath.Join("testdata", "test.in.json")}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Error(t, run(tc.args, &stdout, &stderr))
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--help"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "--workers")
	assert.Contains(t, stdout.String(), "Usage: synonyms")
}
