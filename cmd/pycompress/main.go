// Command pycompress is the CLI surface for the Huffman codec, following
// the argument contract of original_source/compressor/cli.py (argparse)
// and built with Cobra, the CLI framework the pack's own
// compression-tool entries (cosnicolaou-pbzip2, javanhut-IvaldiVCS) use.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/huffmind/pycompress/internal/driver"
	"github.com/huffmind/pycompress/internal/huffman"
)

var (
	flagCompress  bool
	flagExtract   bool
	flagDestFile  string
	flagOutputDir string
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pycompress [flags] filename",
		Short:   "Compress text files with classical Huffman coding.",
		Version: huffman.Version,
		Args:    cobra.ExactArgs(1),
		RunE:    runRoot,
	}

	cmd.Flags().BoolVarP(&flagCompress, "compress", "c", false, "Compress the file")
	cmd.Flags().BoolVarP(&flagExtract, "extract", "x", false, "Extract the file")
	cmd.Flags().StringVarP(&flagDestFile, "dest-file", "d", "", "Destination file name")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Destination directory")
	cmd.MarkFlagsMutuallyExclusive("compress", "extract")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	filename := args[0]

	action, err := driver.ActionFromFlags(flagCompress, flagExtract)
	if err != nil {
		return err
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	out := driver.OutputPath{
		Source:    filename,
		Action:    action,
		Dest:      flagDestFile,
		OutputDir: flagOutputDir,
	}

	switch action {
	case driver.ActionCompress:
		return driver.Compress(log, filename, out)
	default:
		return driver.Extract(log, filename, out)
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
