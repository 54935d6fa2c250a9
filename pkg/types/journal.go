// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the journal-quality
// pipeline: reference journals, predatory registries, tri-state flags,
// and per-journal enrichment results.
//
// See docs/ARCHITECTURE § Data Structures.
package types

import "strings"

// Journal is one row of the reference dataset (the SCImago journal table).
// Rows are loaded once and never mutated; Title is the natural key used
// for deduplication across the pipeline.
type Journal struct {
	// Title is the journal title as it appears in the dataset.
	Title string `json:"title" yaml:"title"`

	// ISSN is the serial number string from the dataset. It may hold
	// several comma-separated ISSNs; it is carried through verbatim.
	ISSN string `json:"issn" yaml:"issn"`

	// Publisher is the publisher name. May be empty.
	Publisher string `json:"publisher" yaml:"publisher"`

	// Categories is the raw semicolon-delimited list of category tags.
	Categories string `json:"categories" yaml:"categories"`
}

// CategoryList splits the Categories field into individual trimmed tags.
// Empty segments are dropped.
func (j Journal) CategoryList() []string {
	var tags []string
	for _, c := range strings.Split(j.Categories, ";") {
		if c = strings.TrimSpace(c); c != "" {
			tags = append(tags, c)
		}
	}
	return tags
}

// PredatoryRegistry holds the two blocklists as sets of normalized
// (trimmed, lower-cased) names. Membership-only; loaded once.
type PredatoryRegistry struct {
	Journals   map[string]struct{}
	Publishers map[string]struct{}
}

// NewPredatoryRegistry returns an empty registry with both sets allocated.
func NewPredatoryRegistry() PredatoryRegistry {
	return PredatoryRegistry{
		Journals:   make(map[string]struct{}),
		Publishers: make(map[string]struct{}),
	}
}
