package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/outliner-go/outliner/internal/outline"
	"github.com/outliner-go/outliner/internal/parser"
	"github.com/outliner-go/outliner/internal/pipeline"
)

// Flag variables.
var (
	flagInputDir  string
	flagOutputDir string
	flagOutput    string
	flagWorkers   int
	flagMaxPages  int
	flagNoFallbck bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract a document outline to JSON",
	Long: `Extract parses a document, classifies its headings, and writes the
outline as JSON.

With a file argument the outline goes to stdout (or --output). With
--input-dir every supported file in the directory is processed and one
JSON file per document is written to --output-dir.

Examples:
  outliner extract report.pdf
  outliner extract report.pdf --output report.json
  outliner extract --input-dir ./docs --output-dir ./out --workers 8`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&flagInputDir, "input-dir", "", "Process every supported file in this directory")
	extractCmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Directory for batch output (required with --input-dir)")
	extractCmd.Flags().StringVar(&flagOutput, "output", "", "Output file for single-file mode (default: stdout)")
	extractCmd.Flags().IntVar(&flagWorkers, "workers", 4, "Concurrent documents in batch mode")
	extractCmd.Flags().IntVar(&flagMaxPages, "max-pages", 50, "Maximum PDF pages to scan")
	extractCmd.Flags().BoolVar(&flagNoFallbck, "no-pdftotext", false, "Disable the pdftotext fallback for unreadable PDFs")
}

func runExtract(cmd *cobra.Command, args []string) error {
	opts := pipeline.Options{
		MaxPages:          flagMaxPages,
		FallbackPdftotext: !flagNoFallbck,
	}

	if flagInputDir != "" {
		if len(args) > 0 {
			return fmt.Errorf("--input-dir and a file argument are mutually exclusive")
		}
		if flagOutputDir == "" {
			return fmt.Errorf("--output-dir is required with --input-dir")
		}
		return runBatch(opts)
	}

	if len(args) == 0 {
		return fmt.Errorf("a file argument or --input-dir is required")
	}
	return runSingle(args[0], opts)
}

// runSingle processes one document and writes its outline JSON.
func runSingle(path string, opts pipeline.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	doc, _, err := pipeline.Extract(data, filepath.Base(path), opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out, err := outline.Encode(doc)
	if err != nil {
		return err
	}

	if flagOutput != "" {
		return os.WriteFile(flagOutput, out, 0o644)
	}
	_, err = fmt.Fprintf(os.Stdout, "%s\n", out)
	return err
}

// runBatch processes every supported file in the input directory with
// a bounded worker pool, writing one JSON file per document.
func runBatch(opts pipeline.Options) error {
	entries, err := os.ReadDir(flagInputDir)
	if err != nil {
		return err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !parser.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported documents in %s", flagInputDir)
	}

	if err := os.MkdirAll(flagOutputDir, 0o755); err != nil {
		return err
	}

	workers := flagWorkers
	if workers < 1 {
		workers = 1
	}

	fmt.Fprintf(os.Stdout, "Processing %d documents with %d workers\n", len(files), workers)

	var (
		wg       sync.WaitGroup
		sem      = make(chan struct{}, workers)
		mu       sync.Mutex
		errCount int
	)

	for _, name := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(name string) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := processFile(name, opts); err != nil {
				fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", name, err)
				mu.Lock()
				errCount++
				mu.Unlock()
				return
			}
			fmt.Fprintf(os.Stdout, "  ✓ %s\n", name)
		}(name)
	}
	wg.Wait()

	if errCount > 0 {
		return fmt.Errorf("%d/%d documents failed", errCount, len(files))
	}
	return nil
}

func processFile(name string, opts pipeline.Options) error {
	data, err := os.ReadFile(filepath.Join(flagInputDir, name))
	if err != nil {
		return err
	}

	doc, _, err := pipeline.Extract(data, name, opts)
	if err != nil {
		return err
	}

	out, err := outline.Encode(doc)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	return os.WriteFile(filepath.Join(flagOutputDir, base+".json"), out, 0o644)
}
