// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gemini infers weakly-structured journal attributes (APC,
// publication frequency, open-access and hybrid status) by asking a
// generative model and parsing its labeled-line response.
//
// See docs/ARCHITECTURE § Metadata Extraction.
package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Backend abstracts the generative model call so tests can supply a
// canned responder. Each implementation takes one rendered prompt and
// returns the raw text response.
type Backend interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ExtractionError reports a failed extraction call. Callers recover
// from it locally: the journal's four attributes stay unknown and the
// batch continues.
type ExtractionError struct {
	Title string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("attribute extraction for %q: %v", e.Title, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Extract asks the backend for the four attributes of one journal and
// parses the response. On a backend failure it returns all-unknown
// attributes together with a *ExtractionError; a response that parses
// to nothing is not an error, just absent data.
func Extract(ctx context.Context, backend Backend, title string) (types.JournalAttributes, error) {
	prompt, err := renderPrompt(title)
	if err != nil {
		return types.UnknownAttributes(), &ExtractionError{Title: title, Err: err}
	}

	text, err := backend.Generate(ctx, prompt)
	if err != nil {
		return types.UnknownAttributes(), &ExtractionError{Title: title, Err: err}
	}

	return ParseAttributes(text), nil
}

// GoogleBackend calls the Google Gemini API.
type GoogleBackend struct {
	APIKey string
	Model  string
}

// Generate sends prompt to the configured Gemini model and returns the
// first text part of the first candidate.
func (b *GoogleBackend) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(b.APIKey))
	if err != nil {
		return "", fmt.Errorf("creating Gemini client: %w", err)
	}
	defer client.Close()

	modelName := b.Model
	if modelName == "" {
		modelName = DefaultModel
	}

	resp, err := client.GenerativeModel(modelName).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned")
	}

	if txt, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return string(txt), nil
	}
	return "", fmt.Errorf("unexpected response part type %T", candidate.Content.Parts[0])
}
