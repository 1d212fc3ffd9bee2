package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huffmind/pycompress/internal/driver"
)

func TestRootCommandCompressAndExtract(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(src, []byte("aaaabbc"), 0o644))

	compressed := filepath.Join(dir, "input.comp")
	cmd := newRootCommand()
	cmd.SetArgs([]string{"-c", "-d", compressed, src})
	require.NoError(t, cmd.Execute())
	require.FileExists(t, compressed)

	extracted := filepath.Join(dir, "input.extr")
	cmd2 := newRootCommand()
	cmd2.SetArgs([]string{"-x", "-d", extracted, compressed})
	require.NoError(t, cmd2.Execute())

	got, err := os.ReadFile(extracted)
	require.NoError(t, err)
	require.Equal(t, "aaaabbc", string(got))
}

func TestRootCommandRejectsAmbiguousFlags(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(src, []byte("aaaabbc"), 0o644))

	cmd := newRootCommand()
	cmd.SetArgs([]string{"-c", "-x", src})
	require.Error(t, cmd.Execute())
}

func TestRootCommandRejectsMissingFlags(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(src, []byte("aaaabbc"), 0o644))

	flagCompress, flagExtract = false, false
	cmd := newRootCommand()
	cmd.SetArgs([]string{src})
	err := cmd.Execute()
	require.Error(t, err)
	require.ErrorIs(t, err, driver.ErrAmbiguousAction)
}
