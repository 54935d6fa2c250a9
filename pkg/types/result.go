// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TriState is a three-valued flag distinguishing "checked and false"
// from "not determined". It is used for Scopus index membership and the
// open-access / hybrid attributes, which stay TriUnknown whenever the
// corresponding external lookup was skipped or unparseable.
type TriState string

const (
	TriTrue    TriState = "true"
	TriFalse   TriState = "false"
	TriUnknown TriState = "unknown"
)

// TriFromBool converts a determined boolean into a TriState.
func TriFromBool(b bool) TriState {
	if b {
		return TriTrue
	}
	return TriFalse
}

// Bool reports the underlying boolean and whether it is determined.
func (t TriState) Bool() (value, known bool) {
	switch t {
	case TriTrue:
		return true, true
	case TriFalse:
		return false, true
	}
	return false, false
}

// JournalAttributes holds the four weakly-structured attributes inferred
// by the metadata extractor. APC and Frequency are free text ("" when not
// reported); the two flags default to TriUnknown.
type JournalAttributes struct {
	APC        string   `json:"apc" yaml:"apc"`
	Frequency  string   `json:"frequency" yaml:"frequency"`
	OpenAccess TriState `json:"open_access" yaml:"open_access"`
	Hybrid     TriState `json:"hybrid" yaml:"hybrid"`
}

// UnknownAttributes returns attributes with every field undetermined.
func UnknownAttributes() JournalAttributes {
	return JournalAttributes{OpenAccess: TriUnknown, Hybrid: TriUnknown}
}

// EnrichmentResult is the assembled record for one candidate journal:
// the source dataset fields plus the outputs of the predatory matcher,
// the Scopus verifier, and the Gemini extractor. One result is produced
// per candidate, in candidate order, with no drops or duplicates.
type EnrichmentResult struct {
	Title      string `json:"title" yaml:"title"`
	ISSN       string `json:"issn" yaml:"issn"`
	Publisher  string `json:"publisher" yaml:"publisher"`
	Categories string `json:"categories" yaml:"categories"`

	// ScopusIndexed is TriUnknown when no Scopus key was supplied and
	// the verifier was never called.
	ScopusIndexed TriState `json:"scopus_indexed" yaml:"scopus_indexed"`

	// The predatory flags are plain booleans: the matcher is pure and
	// always runs, so "unknown" cannot occur.
	PredatoryJournal   bool `json:"is_predatory_journal" yaml:"is_predatory_journal"`
	PredatoryPublisher bool `json:"is_predatory_publisher" yaml:"is_predatory_publisher"`

	Attributes JournalAttributes `json:"attributes" yaml:"attributes"`
}
