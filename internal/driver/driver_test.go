package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func createTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestCompressExtractRoundTrip(t *testing.T) {
	log := zerolog.Nop()

	tests := []struct {
		name        string
		content     string
		shouldError bool
	}{
		{name: "empty file", content: "", shouldError: true},
		{name: "simple ascii", content: "aaaaabbbbcccdde", shouldError: false},
		{name: "long repetitive", content: "hello world! hello world! hello world!", shouldError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := createTempFile(t, "source.txt", []byte(tt.content))
			compressed := filepath.Join(t.TempDir(), "out.comp")
			extracted := filepath.Join(t.TempDir(), "out.extr")

			err := Compress(log, src, OutputPath{Source: src, Action: ActionCompress, Dest: compressed})
			if tt.shouldError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			require.NoError(t, Extract(log, compressed, OutputPath{Source: compressed, Action: ActionExtract, Dest: extracted}))
			got, err := os.ReadFile(extracted)
			require.NoError(t, err)
			require.Equal(t, tt.content, string(got))
		})
	}
}

func TestDefaultDestinationExtensions(t *testing.T) {
	log := zerolog.Nop()
	outDir := t.TempDir()
	src := createTempFile(t, "notes.txt", []byte("aaaabbc"))

	require.NoError(t, Compress(log, src, OutputPath{Source: src, Action: ActionCompress, OutputDir: outDir}))
	compressedPath := filepath.Join(outDir, "notes.txt.comp")
	require.FileExists(t, compressedPath)

	require.NoError(t, Extract(log, compressedPath, OutputPath{Source: compressedPath, Action: ActionExtract, OutputDir: outDir}))
	extractedPath := filepath.Join(outDir, "notes.txt.comp.extr")
	require.FileExists(t, extractedPath)

	got, err := os.ReadFile(extractedPath)
	require.NoError(t, err)
	require.Equal(t, "aaaabbc", string(got))
}

func TestCompressExtractWithExplicitDestAndOutputDir(t *testing.T) {
	log := zerolog.Nop()
	src := createTempFile(t, "report.txt", []byte("the quick brown fox"))
	outDir := t.TempDir()

	destOut := OutputPath{Source: src, Action: ActionCompress, Dest: "archive.bin", OutputDir: outDir}
	require.NoError(t, Compress(log, src, destOut))
	compressedPath := filepath.Join(outDir, "archive.bin")
	require.FileExists(t, compressedPath)

	extractDest := filepath.Join(outDir, "restored.txt")
	require.NoError(t, Extract(log, compressedPath, OutputPath{Source: compressedPath, Action: ActionExtract, Dest: extractDest}))

	got, err := os.ReadFile(extractDest)
	require.NoError(t, err)
	require.Equal(t, "the quick brown fox", string(got))
}

func TestCompressFailsOnEmptyInputAndLeavesNoPartialFile(t *testing.T) {
	log := zerolog.Nop()
	src := createTempFile(t, "empty.txt", []byte(""))

	dest := filepath.Join(filepath.Dir(src), "empty.txt.comp")
	err := Compress(log, src, OutputPath{Source: src, Action: ActionCompress, OutputDir: filepath.Dir(src)})
	require.Error(t, err)
	require.NoFileExists(t, dest)
}

func TestCompressFailureDoesNotDeletePreexistingDest(t *testing.T) {
	log := zerolog.Nop()
	src := createTempFile(t, "empty.txt", []byte(""))

	dest := filepath.Join(t.TempDir(), "keepme.comp")
	const sentinel = "do not delete me"
	require.NoError(t, os.WriteFile(dest, []byte(sentinel), 0o644))

	err := Compress(log, src, OutputPath{Source: src, Action: ActionCompress, Dest: dest})
	require.Error(t, err)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, sentinel, string(got))
}

func TestExtractFailureDoesNotDeletePreexistingDest(t *testing.T) {
	log := zerolog.Nop()
	src := createTempFile(t, "notacontainer.bin", []byte("not a valid container"))

	dest := filepath.Join(t.TempDir(), "keepme.extr")
	const sentinel = "do not delete me either"
	require.NoError(t, os.WriteFile(dest, []byte(sentinel), 0o644))

	err := Extract(log, src, OutputPath{Source: src, Action: ActionExtract, Dest: dest})
	require.Error(t, err)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, sentinel, string(got))
}

func TestActionFromFlags(t *testing.T) {
	a, err := ActionFromFlags(true, false)
	require.NoError(t, err)
	require.Equal(t, ActionCompress, a)

	a, err = ActionFromFlags(false, true)
	require.NoError(t, err)
	require.Equal(t, ActionExtract, a)

	_, err = ActionFromFlags(true, true)
	require.ErrorIs(t, err, ErrAmbiguousAction)

	_, err = ActionFromFlags(false, false)
	require.ErrorIs(t, err, ErrAmbiguousAction)
}
