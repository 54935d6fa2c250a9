// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich runs the per-journal enrichment pipeline: predatory
// check, Scopus index verification, and Gemini attribute extraction,
// assembled into one result record per candidate.
//
// Execution is sequential per candidate on purpose: the Scopus rate
// policy is honored most simply by serializing all remote calls.
//
// See docs/ARCHITECTURE § Enrichment Pipeline.
package enrich

import (
	"context"
	"fmt"
	"io"

	"github.com/thefledgedhurricane/journal-quality/internal/gemini"
	"github.com/thefledgedhurricane/journal-quality/internal/predatory"
	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

// IndexVerifier reports whether a journal title is indexed in the
// citation database. *scopus.Client implements it; tests supply fakes.
type IndexVerifier interface {
	Verify(ctx context.Context, title string) (bool, error)
}

// Pipeline holds the components of one enrichment invocation. Verifier
// and Extractor are nil when the corresponding credential was not
// supplied; the pipeline then skips that component and records the
// field as unknown without issuing any remote call.
type Pipeline struct {
	Registry  types.PredatoryRegistry
	Verifier  IndexVerifier
	Extractor gemini.Backend

	// Out receives progress lines and per-journal warnings. Nil means
	// silent.
	Out io.Writer
}

// Run enriches every candidate in order and returns one result per
// candidate: same length, same order, no drops, no duplicates. Remote
// failures are absorbed per journal: verification errors downgrade to
// "not indexed" and extraction errors to all-unknown attributes, so
// one bad journal never aborts the batch.
func (p *Pipeline) Run(ctx context.Context, candidates []types.Journal) []types.EnrichmentResult {
	out := p.Out
	if out == nil {
		out = io.Discard
	}

	results := make([]types.EnrichmentResult, 0, len(candidates))
	for i, j := range candidates {
		fmt.Fprintf(out, "analyzing %s (%d/%d)\n", j.Title, i+1, len(candidates))
		results = append(results, p.enrichOne(ctx, j, out))
	}
	return results
}

func (p *Pipeline) enrichOne(ctx context.Context, j types.Journal, out io.Writer) types.EnrichmentResult {
	result := types.EnrichmentResult{
		Title:         j.Title,
		ISSN:          j.ISSN,
		Publisher:     j.Publisher,
		Categories:    j.Categories,
		ScopusIndexed: types.TriUnknown,
		Attributes:    types.UnknownAttributes(),
	}

	result.PredatoryJournal, result.PredatoryPublisher = predatory.Check(j.Title, j.Publisher, p.Registry)

	if p.Verifier != nil {
		indexed, err := p.Verifier.Verify(ctx, j.Title)
		if err != nil {
			fmt.Fprintf(out, "warning: %v\n", err)
			result.ScopusIndexed = types.TriFalse
		} else {
			result.ScopusIndexed = types.TriFromBool(indexed)
		}
	}

	if p.Extractor != nil {
		attrs, err := gemini.Extract(ctx, p.Extractor, j.Title)
		if err != nil {
			fmt.Fprintf(out, "warning: %v\n", err)
		}
		result.Attributes = attrs
	}

	return result
}
