// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads and caches the static reference data: the
// SCImago journal table and the two predatory-entity registries. The
// loaded data is immutable; selection helpers operate on it read-only.
//
// See docs/ARCHITECTURE § Reference Data.
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

// commentMarker prefixes ignored lines in the registry files.
const commentMarker = "#"

// DataUnavailableError reports a reference-data load failure. It is
// fatal to the whole pipeline: no candidate is processed after it.
type DataUnavailableError struct {
	Source string
	Err    error
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("reference data unavailable (%s): %v", e.Source, e.Err)
}

func (e *DataUnavailableError) Unwrap() error { return e.Err }

// Reference holds the full reference data set for one load.
type Reference struct {
	Journals []types.Journal
	Registry types.PredatoryRegistry
}

// Load reads the journal table and both registries. Any read or parse
// failure on any of the three sources yields a *DataUnavailableError;
// there is no partial load.
func Load(cfg types.DatasetConfig) (*Reference, error) {
	journals, err := loadJournals(cfg.DatasetPath)
	if err != nil {
		return nil, &DataUnavailableError{Source: cfg.DatasetPath, Err: err}
	}

	registry := types.NewPredatoryRegistry()
	if err := loadRegistry(cfg.PredatoryJournalsPath, registry.Journals); err != nil {
		return nil, &DataUnavailableError{Source: cfg.PredatoryJournalsPath, Err: err}
	}
	if err := loadRegistry(cfg.PredatoryPublishersPath, registry.Publishers); err != nil {
		return nil, &DataUnavailableError{Source: cfg.PredatoryPublishersPath, Err: err}
	}

	return &Reference{Journals: journals, Registry: registry}, nil
}

// loadJournals parses the semicolon-separated journal table. The header
// row must carry at least Title, Issn, Publisher, and Categories columns
// (matched case-insensitively); extra columns are ignored.
func loadJournals(path string) ([]types.Journal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var journals []types.Journal
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(journals)+2, err)
		}

		journals = append(journals, types.Journal{
			Title:      field(record, cols.title),
			ISSN:       field(record, cols.issn),
			Publisher:  field(record, cols.publisher),
			Categories: field(record, cols.categories),
		})
	}
	return journals, nil
}

// columnIndex holds the positions of the required dataset columns.
type columnIndex struct {
	title, issn, publisher, categories int
}

func headerIndex(header []string) (columnIndex, error) {
	cols := columnIndex{title: -1, issn: -1, publisher: -1, categories: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "title":
			cols.title = i
		case "issn":
			cols.issn = i
		case "publisher":
			cols.publisher = i
		case "categories":
			cols.categories = i
		}
	}

	missing := func(idx int, name string) error {
		if idx < 0 {
			return fmt.Errorf("dataset header missing %q column", name)
		}
		return nil
	}
	for _, check := range []struct {
		idx  int
		name string
	}{
		{cols.title, "Title"},
		{cols.issn, "Issn"},
		{cols.publisher, "Publisher"},
		{cols.categories, "Categories"},
	} {
		if err := missing(check.idx, check.name); err != nil {
			return cols, err
		}
	}
	return cols, nil
}

// field returns the column at idx, or "" when the row is short.
func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// loadRegistry reads one line-oriented blocklist into set. Each line is
// trimmed and lower-cased; blank lines and comment lines are skipped.
func loadRegistry(path string, set map[string]struct{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	return scanner.Err()
}
