// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gemini

import (
	"strings"

	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

// Response labels matched case-insensitively at the start of a line.
const (
	labelAPC        = "apc:"
	labelFrequency  = "frequency:"
	labelOpenAccess = "open access:"
	labelHybrid     = "hybrid:"
)

// ParseAttributes parses the model's semi-structured text response into
// typed attributes. Parsing is line-oriented: each line is matched
// against a known label prefix (case-insensitive) and the remainder
// after the first colon is taken, trimmed. Lines matching no label are
// ignored, so a malformed or empty response degrades to all-unknown
// rather than failing. No network, no error path.
func ParseAttributes(text string) types.JournalAttributes {
	attrs := types.UnknownAttributes()

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		switch {
		case strings.HasPrefix(lower, labelAPC):
			attrs.APC = labelValue(trimmed)
		case strings.HasPrefix(lower, labelFrequency):
			attrs.Frequency = labelValue(trimmed)
		case strings.HasPrefix(lower, labelOpenAccess):
			attrs.OpenAccess = triValue(labelValue(trimmed))
		case strings.HasPrefix(lower, labelHybrid):
			attrs.Hybrid = triValue(labelValue(trimmed))
		}
	}
	return attrs
}

// labelValue returns the trimmed remainder after the first colon.
func labelValue(line string) string {
	_, value, _ := strings.Cut(line, ":")
	return strings.TrimSpace(value)
}

// triValue maps a yes/no-ish answer to a TriState. Only a leading "y"
// or "n" decides; anything else stays unknown.
func triValue(value string) types.TriState {
	switch v := strings.ToLower(value); {
	case strings.HasPrefix(v, "y"):
		return types.TriTrue
	case strings.HasPrefix(v, "n"):
		return types.TriFalse
	default:
		return types.TriUnknown
	}
}
