// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"sort"
	"strings"

	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

// FilterByCategory returns the journals whose Categories field contains
// category as a case-insensitive substring, in dataset order and
// deduplicated by Title (first occurrence wins). The match is a plain
// substring, not tokenized: a tag that is a substring of another tag's
// label also matches. No matches yields an empty slice, not an error.
func FilterByCategory(journals []types.Journal, category string) []types.Journal {
	needle := strings.ToLower(category)
	return selectJournals(journals, func(j types.Journal) bool {
		return strings.Contains(strings.ToLower(j.Categories), needle)
	})
}

// SearchByTitle returns the journals whose Title contains the trimmed
// query as a case-insensitive substring, deduplicated by Title. An
// empty (or all-whitespace) query returns nil without scanning the
// table.
func SearchByTitle(journals []types.Journal, query string) []types.Journal {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}
	return selectJournals(journals, func(j types.Journal) bool {
		return strings.Contains(strings.ToLower(j.Title), needle)
	})
}

// selectJournals applies match in order, keeping the first row per Title.
func selectJournals(journals []types.Journal, match func(types.Journal) bool) []types.Journal {
	seen := make(map[string]struct{})
	var selected []types.Journal
	for _, j := range journals {
		if !match(j) {
			continue
		}
		if _, dup := seen[j.Title]; dup {
			continue
		}
		seen[j.Title] = struct{}{}
		selected = append(selected, j)
	}
	return selected
}

// Categories returns the sorted distinct category tags across all
// journals, splitting each Categories field on semicolons.
func Categories(journals []types.Journal) []string {
	set := make(map[string]struct{})
	for _, j := range journals {
		for _, tag := range j.CategoryList() {
			set[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
