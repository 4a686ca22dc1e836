// Package main provides the CLI entry point for calgen-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hj92lim/calgen-go/pkg/calgen"
	"github.com/hj92lim/calgen-go/pkg/calgen/models"
)

var (
	outputDir     string
	toStdout      bool
	tabSize       int
	noFloatSuffix bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calgen [input.xlsx]",
		Short: "Generate C calibration source/header pairs from Excel workbooks",
		Long: `calgen-go reads a calibration workbook (FileInfo sheet plus one or
more calibration list sheets) and generates the matched .c/.h pair
with tab-aligned defines, variable declarations and array tables.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory for the generated .c/.h files")
	rootCmd.Flags().BoolVar(&toStdout, "stdout", false, "Print generated files to stdout instead of writing them")
	rootCmd.Flags().IntVar(&tabSize, "tab-size", 0, "Tab stop width of the generated files (default 4)")
	rootCmd.Flags().BoolVar(&noFloatSuffix, "no-float-suffix", false, "Disable float literal suffixing of FLOAT32 cells")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	suffix := !noFloatSuffix
	opts := calgen.Options{
		TabSize:     tabSize,
		FloatSuffix: &suffix,
	}

	pterm.Info.Printf("Generating code from %s\n", filepath.Base(inputPath))

	gen, err := calgen.Generate(inputPath, opts)
	if err != nil {
		pterm.Error.Printf("Generation failed: %v\n", err)
		return err
	}

	for _, sheet := range gen.Sheets {
		pterm.Info.Printf("Processed sheet %s\n", sheet)
	}

	if toStdout {
		fmt.Println(joinLines(gen.Source))
		fmt.Println(joinLines(gen.Header))
		return nil
	}

	if err := writeFiles(gen, outputDir); err != nil {
		pterm.Error.Printf("Failed to write output: %v\n", err)
		return err
	}

	pterm.Success.Printf("Generated %s and %s in %s (%d + %d lines)\n",
		gen.SourceName, gen.HeaderName, outputDir, len(gen.Source), len(gen.Header))
	return nil
}

func writeFiles(gen *models.GeneratedFiles, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	srcPath := filepath.Join(dir, gen.SourceName)
	if err := os.WriteFile(srcPath, []byte(joinLines(gen.Source)), 0644); err != nil {
		return err
	}
	hdrPath := filepath.Join(dir, gen.HeaderName)
	return os.WriteFile(hdrPath, []byte(joinLines(gen.Header)), 0644)
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
