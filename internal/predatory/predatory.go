// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package predatory flags journals and publishers listed in the
// predatory-entity registries. Matching is pure and deterministic:
// no I/O, no failure mode.
package predatory

import (
	"strings"

	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

// Check reports whether title and publisher appear in the respective
// registry. Both inputs are trimmed and lower-cased, then tested for
// exact set membership. A blocklist entry must match verbatim after
// normalization, never as a substring. The two flags are independent:
// a journal can match via its own title, its publisher, both, or
// neither.
func Check(title, publisher string, registry types.PredatoryRegistry) (journalMatch, publisherMatch bool) {
	journalMatch = contains(registry.Journals, title)
	publisherMatch = contains(registry.Publishers, publisher)
	return journalMatch, publisherMatch
}

func contains(set map[string]struct{}, name string) bool {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return false
	}
	_, ok := set[normalized]
	return ok
}
