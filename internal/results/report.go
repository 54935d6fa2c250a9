// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

// Report is the on-disk representation of one analysis run: the query
// that selected the candidates, the assembled results, and summary
// statistics. A saved report can be reviewed later without re-running
// any remote lookups.
type Report struct {
	Query   ReportQuery              `yaml:"query"`
	Results []types.EnrichmentResult `yaml:"results"`
	Summary ReportSummary            `yaml:"summary"`
}

// ReportQuery stores how candidates were selected.
type ReportQuery struct {
	// Mode is "category" or "journal".
	Mode string `yaml:"mode"`
	Term string `yaml:"term"`
}

// ReportSummary stores run statistics and a timestamp.
type ReportSummary struct {
	Total           int       `yaml:"total"`
	ScopusChecked   bool      `yaml:"scopus_checked"`
	GeminiExtracted bool      `yaml:"gemini_extracted"`
	Timestamp       time.Time `yaml:"timestamp"`
}

// WriteReport saves a run to a YAML file.
func WriteReport(path string, query ReportQuery, scopusChecked, geminiExtracted bool, results []types.EnrichmentResult) error {
	report := Report{
		Query:   query,
		Results: results,
		Summary: ReportSummary{
			Total:           len(results),
			ScopusChecked:   scopusChecked,
			GeminiExtracted: geminiExtracted,
			Timestamp:       time.Now(),
		},
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// csvHeader matches the column layout of the analyzer's CSV exports.
var csvHeader = []string{
	"Title", "ISSN", "Publisher", "Categories",
	"Scopus_Indexed", "is_predatory_journal", "is_predatory_publisher",
	"APC", "Frequency", "is_open_access", "is_hybrid",
}

// WriteCSV exports results to a CSV file at path.
func WriteCSV(path string, results []types.EnrichmentResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range results {
		record := []string{
			r.Title, r.ISSN, r.Publisher, r.Categories,
			string(r.ScopusIndexed),
			strconv.FormatBool(r.PredatoryJournal),
			strconv.FormatBool(r.PredatoryPublisher),
			r.Attributes.APC, r.Attributes.Frequency,
			string(r.Attributes.OpenAccess),
			string(r.Attributes.Hybrid),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row for %s: %w", r.Title, err)
		}
	}
	w.Flush()
	return w.Error()
}
