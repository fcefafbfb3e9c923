package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := "# Source: test\n\nfoo.bar baz\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.txt"), []byte(content), 0o644))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSingleProfile(t *testing.T) {
	out, err := execute(t, "--corpus", writeCorpus(t), "--profile", "whitespace", "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded 1 documents")
	assert.Contains(t, out, "(TP: 3, FP: 0, FN: 0)")
	assert.Contains(t, out, "Words: 2  Separators: 1")
}

func TestSweep(t *testing.T) {
	out, err := execute(t, "--corpus", writeCorpus(t), "--sweep")
	require.NoError(t, err)
	assert.Contains(t, out, "Best: whitespace")
}

func TestUnknownProfile(t *testing.T) {
	_, err := execute(t, "--corpus", writeCorpus(t), "--profile", "nope")
	require.Error(t, err)
}

func TestMissingCorpus(t *testing.T) {
	_, err := execute(t, "--corpus", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
