// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package results formats and persists the enrichment result table:
// human-readable output, JSON/YAML/CSV exports, and a SQLite run
// history.
package results

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

// FormatTable writes results as a human-readable table to w.
func FormatTable(results []types.EnrichmentResult, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No journals matched.")
		return
	}

	fmt.Fprintf(w, "%-50s  %-9s  %-7s  %-6s  %-12s  %-8s  %-8s  %s\n",
		"Title", "Scopus", "Pred-J", "Pred-P", "APC", "Freq", "OA", "Hybrid")
	fmt.Fprintln(w, strings.Repeat("-", 118))

	for _, r := range results {
		fmt.Fprintf(w, "%-50s  %-9s  %-7s  %-6s  %-12s  %-8s  %-8s  %s\n",
			truncate(r.Title, 50),
			r.ScopusIndexed,
			yesNo(r.PredatoryJournal),
			yesNo(r.PredatoryPublisher),
			truncate(orDash(r.Attributes.APC), 12),
			truncate(orDash(r.Attributes.Frequency), 8),
			r.Attributes.OpenAccess,
			r.Attributes.Hybrid)
	}

	fmt.Fprintf(w, "\n%d journal(s) analyzed\n", len(results))
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(results []types.EnrichmentResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
