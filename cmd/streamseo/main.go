// Package main provides the streamseo CLI: catalogue fetching, SEO
// metadata generation and multi-source event merging.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"streamseo/internal/config"
	"streamseo/internal/fetcher"
	"streamseo/internal/logger"
	"streamseo/internal/merger"
	"streamseo/internal/models"
	"streamseo/internal/pipeline"
	"streamseo/internal/writer"
)

var version = "0.1.0"

func main() {
	// A missing .env is fine; environment overrides are optional.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the streamseo CLI.
func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "streamseo",
		Short:   "Generate Spanish SEO metadata for live-stream sporting events",
		Long:    "Streamseo fetches a live-stream sports catalogue and derives SEO metadata, sitemap entries and keyword artifacts localized into Spanish.",
		Version: version,
	}

	rootCmd.SetVersionTemplate("streamseo version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration file")

	rootCmd.AddCommand(newGenerateCmd(&configPath))
	rootCmd.AddCommand(newFetchCmd(&configPath))
	rootCmd.AddCommand(newMergeCmd(&configPath))

	return rootCmd
}

// newGenerateCmd creates the generate subcommand: the full pipeline.
func newGenerateCmd(configPath *string) *cobra.Command {
	var sourceURL string

	var localFile string

	var outputDir string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch the catalogue and generate all SEO artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath, sourceURL, localFile, outputDir)
			if err != nil {
				return err
			}

			return runGenerate(cfg)
		},
	}

	cmd.Flags().StringVarP(&sourceURL, "source-url", "u", "", "Catalogue URL (overrides config)")
	cmd.Flags().StringVarP(&localFile, "file", "f", "", "Local catalogue JSON file (bypasses fetching)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")

	return cmd
}

func runGenerate(cfg *config.Config) error {
	log := logger.New(cfg.Logging.Level)

	log.Info("starting generation run", "source", sourceLabel(cfg), "output", cfg.Output.Dir)

	startTime := time.Now()

	// Phase 1: fetch.
	raw, err := fetchCatalogue(cfg, log)
	if err != nil {
		log.Error("fetch failed", "error", err)

		return fmt.Errorf("fetch failed: %w", err)
	}

	log.Info("catalogue fetched", "bytes", len(raw), "elapsed", time.Since(startTime).String())

	// Phase 2: validate and transform.
	generator, err := pipeline.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	set, err := generator.Process(raw)
	if err != nil {
		log.Error("generation aborted", "error", err)

		return err
	}

	// Phase 3: write artifacts.
	manifest, err := writer.New(&cfg.Output, log).WriteAll(set)
	if err != nil {
		log.Error("write failed", "error", err)

		return fmt.Errorf("write failed: %w", err)
	}

	fmt.Println("------------------------------------------------")
	fmt.Println("Generation Report")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Run ID:          %s\n", manifest.RunID)
	fmt.Printf("Categories:      %d\n", len(set.Metadata.Categories))
	fmt.Printf("Events:          %d\n", set.Metadata.TotalEvents)
	fmt.Printf("Sitemap entries: %d\n", len(set.Sitemap))
	fmt.Printf("Artifacts:       %d in %s\n", len(manifest.Artifacts), cfg.Output.Dir)
	fmt.Printf("Total duration:  %v\n", time.Since(startTime).Round(time.Millisecond))
	fmt.Println("------------------------------------------------")

	return nil
}

// newFetchCmd creates the fetch subcommand: persist a raw catalogue
// snapshot with retrieval metadata.
func newFetchCmd(configPath *string) *cobra.Command {
	var sourceURL string

	var outputFile string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the catalogue and store a raw snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath, sourceURL, "", "")
			if err != nil {
				return err
			}

			log := logger.New(cfg.Logging.Level)

			raw, err := fetchCatalogue(cfg, log)
			if err != nil {
				log.Error("fetch failed", "error", err)

				return fmt.Errorf("fetch failed: %w", err)
			}

			catalogue, err := pipeline.NewValidator().ParseCatalogue(raw)
			if err != nil {
				log.Error("snapshot rejected", "error", err)

				return err
			}

			total := 0
			for _, category := range catalogue.Events.Streams {
				total += len(category.Streams)
			}

			snapshot := &models.Snapshot{
				Metadata: models.SnapshotMetadata{
					FetchedAt:   time.Now().UTC().Format(time.RFC3339),
					Source:      cfg.Source.URL,
					TotalEvents: total,
				},
				Events: &catalogue.Events,
			}

			if err := writer.New(&cfg.Output, log).WriteSnapshot(snapshot, outputFile); err != nil {
				return fmt.Errorf("snapshot write failed: %w", err)
			}

			log.Info("snapshot stored", "file", outputFile, "events", total)

			return nil
		},
	}

	cmd.Flags().StringVarP(&sourceURL, "source-url", "u", "", "Catalogue URL (overrides config)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "events.json", "Snapshot file name inside the output directory")

	return cmd
}

// newMergeCmd creates the merge subcommand: combine two catalogue
// snapshots by title similarity.
func newMergeCmd(configPath *string) *cobra.Command {
	var primaryPath string

	var secondaryPath string

	var outputFile string

	var threshold float64

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge two catalogue snapshots by event-title similarity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath, "", "", "")
			if err != nil {
				return err
			}

			log := logger.New(cfg.Logging.Level)

			primary, err := loadMergeEvents(primaryPath, "primary")
			if err != nil {
				return err
			}

			secondary, err := loadMergeEvents(secondaryPath, "secondary")
			if err != nil {
				return err
			}

			log.Info("merging catalogues",
				"primary", len(primary), "secondary", len(secondary), "threshold", threshold)

			result := merger.Merge(primary, secondary, threshold)

			doc := &merger.Document{
				Metadata: merger.DocumentMetadata{
					GeneratedAt:        time.Now().UTC().Format(time.RFC3339),
					Threshold:          threshold,
					PrimarySource:      primaryPath,
					SecondarySource:    secondaryPath,
					TotalMerged:        len(result.Merged),
					UnmatchedPrimary:   len(result.UnmatchedPrimary),
					UnmatchedSecondary: len(result.UnmatchedSecondary),
				},
				Result: result,
			}

			if err := writeMergeDocument(cfg, log, doc, outputFile); err != nil {
				return err
			}

			log.Info("merge complete",
				"merged", len(result.Merged),
				"unmatched_primary", len(result.UnmatchedPrimary),
				"unmatched_secondary", len(result.UnmatchedSecondary))

			return nil
		},
	}

	cmd.Flags().StringVar(&primaryPath, "primary", "", "Primary catalogue snapshot (JSON file)")
	cmd.Flags().StringVar(&secondaryPath, "secondary", "", "Secondary catalogue snapshot (JSON file)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "merged_events.json", "Merge result file name inside the output directory")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", merger.DefaultThreshold, "Minimum title similarity (0-1)")

	_ = cmd.MarkFlagRequired("primary")
	_ = cmd.MarkFlagRequired("secondary")

	return cmd
}

// loadConfig layers CLI overrides on top of the resolved configuration.
func loadConfig(path, sourceURL, localFile, outputDir string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if sourceURL != "" {
		cfg.Source.URL = sourceURL
		cfg.Source.File = ""
	}

	if localFile != "" {
		cfg.Source.File = localFile
	}

	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	return cfg, nil
}

func sourceLabel(cfg *config.Config) string {
	if cfg.Source.IsLocalFile() {
		return cfg.Source.File
	}

	return cfg.Source.URL
}

func fetchCatalogue(cfg *config.Config, log *logger.Logger) ([]byte, error) {
	f := fetcher.New(&cfg.Retry)

	if cfg.Source.IsLocalFile() {
		log.Info("reading local catalogue", "file", cfg.Source.File)

		return f.ReadLocalFile(cfg.Source.File)
	}

	log.Info("fetching catalogue", "url", cfg.Source.URL)

	return f.Fetch(cfg.Source.URL)
}

// loadMergeEvents reads a catalogue snapshot from disk and flattens it.
func loadMergeEvents(path, source string) ([]merger.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s catalogue %s: %w", source, path, err)
	}

	catalogue, err := pipeline.NewValidator().ParseCatalogue(data)
	if err != nil {
		return nil, fmt.Errorf("%s catalogue %s: %w", source, path, err)
	}

	events := merger.FlattenCatalogue(catalogue, source)
	if len(events) == 0 {
		return nil, fmt.Errorf("%s catalogue %s contains no events", source, path)
	}

	return events, nil
}

func writeMergeDocument(cfg *config.Config, log *logger.Logger, doc *merger.Document, name string) error {
	if err := writer.New(&cfg.Output, log).WriteDocument(doc, name); err != nil {
		return fmt.Errorf("merge write failed: %w", err)
	}

	return nil
}
