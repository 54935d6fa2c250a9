// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

var sampleResults = []types.EnrichmentResult{
	{
		Title:         "Nature",
		ISSN:          "0028-0836",
		Publisher:     "Nature Portfolio",
		Categories:    "Multidisciplinary",
		ScopusIndexed: types.TriTrue,
		Attributes: types.JournalAttributes{
			APC:        "11690 USD",
			Frequency:  "Weekly",
			OpenAccess: types.TriFalse,
			Hybrid:     types.TriTrue,
		},
	},
	{
		Title:              "Fake Journal",
		ISSN:               "1234-5678",
		Publisher:          "Shady House",
		Categories:         "Medicine",
		ScopusIndexed:      types.TriFalse,
		PredatoryJournal:   true,
		PredatoryPublisher: true,
		Attributes:         types.UnknownAttributes(),
	},
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleResults, &buf)

	out := buf.String()
	assert.Contains(t, out, "Nature")
	assert.Contains(t, out, "Fake Journal")
	assert.Contains(t, out, "2 journal(s) analyzed")
}

func TestFormatTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	assert.Contains(t, buf.String(), "No journals matched.")
}

func TestWriteReport_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	query := ReportQuery{Mode: "category", Term: "Medicine"}

	require.NoError(t, WriteReport(path, query, true, false, sampleResults))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report Report
	require.NoError(t, yaml.Unmarshal(data, &report))
	assert.Equal(t, query, report.Query)
	assert.Equal(t, 2, report.Summary.Total)
	assert.True(t, report.Summary.ScopusChecked)
	assert.False(t, report.Summary.GeminiExtracted)
	require.Len(t, report.Results, 2)
	assert.Equal(t, types.TriTrue, report.Results[0].ScopusIndexed)
	assert.True(t, report.Results[1].PredatoryJournal)
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.csv")
	require.NoError(t, WriteCSV(path, sampleResults))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "Nature", rows[1][0])
	assert.Equal(t, "true", rows[1][4])
	assert.Equal(t, "true", rows[2][5])
	assert.Equal(t, "unknown", rows[2][9])
}

func TestStore_SaveAndReload(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	runID, err := store.SaveRun(ctx, "journal", "nature", sampleResults)
	require.NoError(t, err)

	runs, err := store.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].ID)
	assert.Equal(t, "journal", runs[0].Mode)
	assert.Equal(t, "nature", runs[0].Term)
	assert.Equal(t, 2, runs[0].Total)
	assert.False(t, runs[0].CreatedAt.IsZero())

	got, err := store.RunResults(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, sampleResults, got)
}

func TestStore_NewestFirst(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	_, err = store.SaveRun(ctx, "category", "Medicine", sampleResults[:1])
	require.NoError(t, err)
	second, err := store.SaveRun(ctx, "journal", "fake", sampleResults[1:])
	require.NoError(t, err)

	runs, err := store.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].ID)
}

func TestStore_UnknownRun(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.RunResults(context.Background(), 42)
	assert.Error(t, err)
}
