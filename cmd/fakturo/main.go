// Package main provides the CLI entry point for fakturo.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/fakturo/fakturo"
	"github.com/fakturo/fakturo/format"
)

var (
	outputPath string
	outputFmt  string
	asText     bool
	langCode   string
	minRows    int
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	rootCmd := &cobra.Command{
		Use:   "fakturo [input]",
		Short: "Extract structured invoice data from scanned PDFs",
		Long: `fakturo extracts tables and invoice fields from scanned Norwegian and
English invoices and renders them as markdown, JSON, CSV, HTML, XML, or YAML.

PDF input requires a build with -tags ocr and a Tesseract installation;
use --text to process already-OCR'd text files instead.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVarP(&outputFmt, "format", "f", "markdown", "Output format: markdown, json, csv, html, xml, yaml")
	rootCmd.Flags().BoolVar(&asText, "text", false, "Treat input as already-OCR'd text instead of a PDF")
	rootCmd.Flags().StringVar(&langCode, "lang", "", "Document language (en, no); default auto-detect")
	rootCmd.Flags().IntVar(&minRows, "min-rows", 2, "Minimum rows for a detected table")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	extractor, err := buildExtractor(inputPath)
	if err != nil {
		return err
	}

	log.Info().Str("input", inputPath).Str("format", outputFmt).Msg("extracting")

	out, err := render(extractor)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if outputPath == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info().Str("output", outputPath).Msg("done")
	return nil
}

func buildExtractor(inputPath string) (*fakturo.Extractor, error) {
	var extractor *fakturo.Extractor
	if asText {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		extractor = fakturo.FromText(string(data))
	} else {
		extractor = fakturo.FromPDF(inputPath)
	}

	extractor = extractor.MinRows(minRows)

	switch langCode {
	case "":
	case "no":
		extractor = extractor.Language(language.Norwegian)
	case "en":
		extractor = extractor.Language(language.English)
	default:
		return nil, fmt.Errorf("invalid language: %s (must be en or no)", langCode)
	}
	return extractor, nil
}

func render(extractor *fakturo.Extractor) (string, error) {
	var formatter format.Formatter
	switch outputFmt {
	case "markdown", "md":
		return extractor.Markdown()
	case "json":
		formatter = format.NewJSONFormatter()
	case "csv":
		formatter = format.NewCSVFormatter()
	case "html":
		formatter = format.NewHTMLFormatter()
	case "xml":
		formatter = format.NewXMLFormatter()
	case "yaml", "yml":
		formatter = format.NewYAMLFormatter()
	default:
		return "", fmt.Errorf("invalid format: %s", outputFmt)
	}
	return extractor.Format(formatter)
}
