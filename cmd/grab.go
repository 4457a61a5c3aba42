// Package cmd — grab command.
// Wires the concrete pipeline stages together and runs the whole flow:
// resolve → (fetch → extract → normalize) per unit → assemble → render → write.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"coursepack/catalog"
	"coursepack/core"
	"coursepack/core/extract"
	"coursepack/core/fetch"
	"coursepack/core/normalize"
	"coursepack/core/output"
	"coursepack/core/render"
	"coursepack/pipeline"
)

var (
	flagOutputDir  string
	flagCatalogURL string
)

var grabCmd = &cobra.Command{
	Use:   "grab [course-url-or-slug]",
	Short: "Download a course and write one PDF per module",
	Long: `Grab resolves the course structure from the catalog, fetches every unit
page in order, and writes one PDF per module under
<output>/<NN>-<learning-path>/<NN>-<module>.pdf.

Examples:
  coursepack grab https://learn.microsoft.com/en-us/training/courses/ai-102t00
  coursepack grab ai-102t00 --output_dir ./out`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGrab,
}

func init() {
	rootCmd.AddCommand(grabCmd)

	grabCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: ./output)")
	grabCmd.Flags().StringVar(&flagCatalogURL, "catalog_url", "", "Catalog API base URL override")
}

func runGrab(cmd *cobra.Command, args []string) error {
	cfg := core.DefaultConfig()
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if flagCatalogURL != "" {
		cfg.CatalogURL = flagCatalogURL
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	courseURL := cfg.DefaultCourseURL
	if len(args) == 1 {
		courseURL = args[0]
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	resolver := catalog.NewResolver(cfg.CatalogURL, cfg.CatalogTimeout, cfg.UserAgent)
	fetcher := fetch.New(cfg.FetchTimeout, cfg.UserAgent)
	extractor := extract.New()
	normalizer := normalize.New()
	renderer := render.NewPDFRenderer()

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	pipe := pipeline.New(resolver, fetcher, extractor, normalizer, log)

	results, err := pipe.Run(context.Background(), courseURL)
	if err != nil {
		return err
	}

	for _, result := range results {
		data, err := renderer.Render(result.Doc)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", result.Path, err)
		}

		path, err := writer.Write(result.Path, data, renderer.Extension())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	}

	fmt.Fprintf(os.Stdout, "Done: %d module document(s) in %s\n", len(results), writer.OutputDir)
	return nil
}
