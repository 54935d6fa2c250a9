// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gemini

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.JournalAttributes
	}{
		{
			name: "well-formed response",
			text: "APC: 500 USD\nFrequency: Monthly\nOpen Access: Yes\nHybrid: No",
			want: types.JournalAttributes{
				APC:        "500 USD",
				Frequency:  "Monthly",
				OpenAccess: types.TriTrue,
				Hybrid:     types.TriFalse,
			},
		},
		{
			name: "missing hybrid line stays unknown",
			text: "APC: 500 USD\nFrequency: Monthly\nOpen Access: Yes",
			want: types.JournalAttributes{
				APC:        "500 USD",
				Frequency:  "Monthly",
				OpenAccess: types.TriTrue,
				Hybrid:     types.TriUnknown,
			},
		},
		{
			name: "labels matched case-insensitively",
			text: "apc: 1200 EUR\nFREQUENCY: Quarterly\nopen access: no\nHYBRID: yes",
			want: types.JournalAttributes{
				APC:        "1200 EUR",
				Frequency:  "Quarterly",
				OpenAccess: types.TriFalse,
				Hybrid:     types.TriTrue,
			},
		},
		{
			name: "explicit unknown answers",
			text: "APC: None\nFrequency: None\nOpen Access: Unknown\nHybrid: Unknown",
			want: types.JournalAttributes{
				APC:        "None",
				Frequency:  "None",
				OpenAccess: types.TriUnknown,
				Hybrid:     types.TriUnknown,
			},
		},
		{
			name: "surrounding chatter ignored",
			text: "Here is what I found:\n\n  APC: 3000 USD\nOpen Access: Yes, fully OA since 2019\nHope this helps!",
			want: types.JournalAttributes{
				APC:        "3000 USD",
				OpenAccess: types.TriTrue,
				Hybrid:     types.TriUnknown,
			},
		},
		{
			name: "empty response is all-unknown",
			text: "",
			want: types.UnknownAttributes(),
		},
		{
			name: "malformed response is all-unknown",
			text: "I could not find any information about that journal.",
			want: types.UnknownAttributes(),
		},
		{
			name: "no looser inference on odd answers",
			text: "Open Access: probably\nHybrid: it depends",
			want: types.UnknownAttributes(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAttributes(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseAttributes() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// fakeBackend returns canned text or a canned error.
type fakeBackend struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeBackend) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestExtract(t *testing.T) {
	b := &fakeBackend{text: "APC: 200 GBP\nFrequency: Annual\nOpen Access: No\nHybrid: No"}

	attrs, err := Extract(context.Background(), b, "Annals of Science")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := types.JournalAttributes{
		APC:        "200 GBP",
		Frequency:  "Annual",
		OpenAccess: types.TriFalse,
		Hybrid:     types.TriFalse,
	}
	if !reflect.DeepEqual(attrs, want) {
		t.Errorf("Extract() = %+v, want %+v", attrs, want)
	}

	if len(b.prompts) != 1 || !strings.Contains(b.prompts[0], "'Annals of Science'") {
		t.Errorf("prompt missing journal title: %q", b.prompts)
	}
}

func TestExtract_BackendFailure(t *testing.T) {
	b := &fakeBackend{err: fmt.Errorf("quota exceeded")}

	attrs, err := Extract(context.Background(), b, "Nature")
	if !reflect.DeepEqual(attrs, types.UnknownAttributes()) {
		t.Errorf("Extract() attrs = %+v, want all-unknown", attrs)
	}

	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("Extract() error = %v, want *ExtractionError", err)
	}
	if extErr.Title != "Nature" {
		t.Errorf("ExtractionError.Title = %q, want %q", extErr.Title, "Nature")
	}
}
