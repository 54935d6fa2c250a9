package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "journal-quality/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DatasetConfig locates the static reference data and controls its cache.
type DatasetConfig struct {
	// DatasetPath is the SCImago journal table (semicolon-separated CSV).
	DatasetPath string `json:"dataset_path" yaml:"dataset_path"`

	// PredatoryJournalsPath is the line-oriented predatory journal list.
	PredatoryJournalsPath string `json:"predatory_journals_path" yaml:"predatory_journals_path"`

	// PredatoryPublishersPath is the line-oriented predatory publisher list.
	PredatoryPublishersPath string `json:"predatory_publishers_path" yaml:"predatory_publishers_path"`

	// CacheTTL bounds how long a loaded dataset is reused before the
	// next access re-reads it from disk (default 24h).
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}

// ScopusConfig holds settings for the Scopus index verifier.
type ScopusConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the Elsevier API key. When empty the verifier is
	// skipped entirely and index membership is recorded as unknown.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MinInterval is the minimum delay before each Scopus call,
	// honoring the per-key rate limit (default 500ms).
	MinInterval time.Duration `json:"min_interval" yaml:"min_interval"`

	// MaxRetries is the retry budget for HTTP 429 responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// GeminiConfig holds settings for the metadata extractor.
type GeminiConfig struct {
	// Model is the Gemini model identifier (default "gemini-2.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the Google AI API key. When empty extraction is
	// skipped and all four attributes stay unknown.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// ResultsConfig controls where result artifacts are written.
type ResultsConfig struct {
	// ExportsDir is the directory for CSV/YAML exports and the run
	// history database (default "exports").
	ExportsDir string `json:"exports_dir" yaml:"exports_dir"`
}

// AnalyzeConfig groups all component configurations for one analysis run.
type AnalyzeConfig struct {
	Dataset DatasetConfig `json:"dataset" yaml:"dataset"`
	Scopus  ScopusConfig  `json:"scopus" yaml:"scopus"`
	Gemini  GeminiConfig  `json:"gemini" yaml:"gemini"`
	Results ResultsConfig `json:"results" yaml:"results"`
}
