// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/thefledgedhurricane/journal-quality/internal/dataset"
	"github.com/thefledgedhurricane/journal-quality/internal/enrich"
	"github.com/thefledgedhurricane/journal-quality/internal/gemini"
	"github.com/thefledgedhurricane/journal-quality/internal/results"
	"github.com/thefledgedhurricane/journal-quality/internal/scopus"
	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Enrich a set of journals with quality signals",
	Long: `Analyze selects journals from the reference table, by category tag or
by title substring, and enriches each one: predatory-registry check,
Scopus index verification (with --scopus-key), and AI attribute
extraction (with --gemini-key). Components without a key are skipped
and recorded as unknown.

Journals are processed one at a time; remote calls are serialized to
honor the Scopus rate limit, so large categories take a while.`,
	RunE: runAnalyze,
}

// datasetCache holds the reference data across invocations within one
// process, reloading after the configured TTL.
var (
	datasetCache    *dataset.Cache
	datasetCacheCfg types.DatasetConfig
)

// loadReference returns the cached reference data for cfg.
func loadReference(cfg types.DatasetConfig) (*dataset.Reference, error) {
	if datasetCache == nil || cfg != datasetCacheCfg {
		datasetCache = dataset.NewCache(cfg)
		datasetCacheCfg = cfg
	}
	return datasetCache.Get()
}

// datasetConfig assembles the reference-data configuration from flags,
// the config file, and built-in defaults, in that order.
func datasetConfig(cmd *cobra.Command) types.DatasetConfig {
	flagOrConfig := func(flag, key, fallback string) string {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			return v
		}
		return configDefault(key, fallback)
	}
	return types.DatasetConfig{
		DatasetPath:             flagOrConfig("dataset", "dataset.path", "data/scimago_journals.csv"),
		PredatoryJournalsPath:   flagOrConfig("predatory-journals", "dataset.predatory_journals", "data/predatory_journals.txt"),
		PredatoryPublishersPath: flagOrConfig("predatory-publishers", "dataset.predatory_publishers", "data/predatory_publishers.txt"),
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	journal, _ := cmd.Flags().GetString("journal")

	if (category == "") == (journal == "") {
		return fmt.Errorf("select candidates with exactly one of --category or --journal")
	}

	ref, err := loadReference(datasetConfig(cmd))
	if err != nil {
		return err
	}

	var mode, term string
	var candidates []types.Journal
	if category != "" {
		mode, term = "category", category
		candidates = dataset.FilterByCategory(ref.Journals, category)
	} else {
		mode, term = "journal", journal
		candidates = dataset.SearchByTitle(ref.Journals, journal)
	}

	if len(candidates) == 0 {
		fmt.Printf("No journals found matching %q.\n", term)
		return nil
	}
	fmt.Fprintf(os.Stderr, "Found %d journal(s) to analyze\n", len(candidates))

	scopusKey, _ := cmd.Flags().GetString("scopus-key")
	scopusKey = secretDefault("scopus-api-key", scopusKey)
	geminiKey, _ := cmd.Flags().GetString("gemini-key")
	geminiKey = secretDefault("gemini-api-key", geminiKey)
	model, _ := cmd.Flags().GetString("model")

	pipeline := &enrich.Pipeline{
		Registry: ref.Registry,
		Out:      os.Stderr,
	}
	if scopusKey != "" {
		pipeline.Verifier = scopus.NewClient(types.ScopusConfig{
			HTTPConfig: types.HTTPConfig{UserAgent: "journal-quality/" + version},
			APIKey:     scopusKey,
		})
	}
	if geminiKey != "" {
		pipeline.Extractor = &gemini.GoogleBackend{APIKey: geminiKey, Model: model}
	}

	table := pipeline.Run(cmd.Context(), candidates)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		if err := results.FormatJSON(table, os.Stdout); err != nil {
			return err
		}
	} else {
		results.FormatTable(table, os.Stdout)
	}

	csvPath, _ := cmd.Flags().GetString("csv")
	if export, _ := cmd.Flags().GetBool("export"); export && csvPath == "" {
		dir := exportsDir(cmd)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		csvPath = defaultExportName(dir, mode)
	}
	if csvPath != "" {
		if err := results.WriteCSV(csvPath, table); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", csvPath)
	}
	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		query := results.ReportQuery{Mode: mode, Term: term}
		if err := results.WriteReport(outPath, query, scopusKey != "", geminiKey != "", table); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	}

	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		saveHistory(cmd, mode, term, table)
	}
	return nil
}

// saveHistory appends the run to the history database. History is a
// convenience; failures warn rather than fail the analysis.
func saveHistory(cmd *cobra.Command, mode, term string, table []types.EnrichmentResult) {
	store, err := results.OpenStore(exportsDir(cmd))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	runID, err := store.SaveRun(cmd.Context(), mode, term, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: saving run history: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Saved as run %d (see journal-quality history)\n", runID)
}

func exportsDir(cmd *cobra.Command) string {
	if v, _ := cmd.Flags().GetString("exports-dir"); v != "" {
		return v
	}
	return configDefault("results.exports_dir", "exports")
}

// defaultExportName suggests a timestamped CSV path like the analyzer's
// classic export naming.
func defaultExportName(dir, mode string) string {
	return filepath.Join(dir, fmt.Sprintf("journal_analysis_%s_%s.csv", mode, time.Now().Format("20060102_150405")))
}

func init() {
	analyzeCmd.Flags().String("category", "", "select every journal tagged with this category (substring match)")
	analyzeCmd.Flags().String("journal", "", "select journals whose title contains this text")
	analyzeCmd.Flags().String("scopus-key", "", "Elsevier API key for Scopus index verification")
	analyzeCmd.Flags().String("gemini-key", "", "Google AI key for attribute extraction")
	analyzeCmd.Flags().String("model", gemini.DefaultModel, "Gemini model identifier")
	analyzeCmd.Flags().Bool("json", false, "output results as JSON")
	analyzeCmd.Flags().String("csv", "", "also export results to this CSV file")
	analyzeCmd.Flags().Bool("export", false, "export results to a timestamped CSV in the exports directory")
	analyzeCmd.Flags().String("out", "", "also save a YAML report to this file")
	analyzeCmd.Flags().String("exports-dir", "", "directory for the run history database (default: exports)")
	analyzeCmd.Flags().Bool("no-save", false, "do not record this run in the history database")

	rootCmd.AddCommand(analyzeCmd)
}
