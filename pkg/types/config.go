// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionBackend identifies the HTML-to-Markdown conversion engine.
type ConversionBackend string

const (
	// BackendNative converts in-process with the html-to-markdown library.
	BackendNative ConversionBackend = "native"

	// BackendPandoc pipes HTML through a pandoc container.
	BackendPandoc ConversionBackend = "pandoc"
)

// ConversionConfig holds settings for the convert pipeline.
type ConversionConfig struct {
	// Backend selects the conversion engine: native or pandoc.
	Backend ConversionBackend `json:"backend" yaml:"backend"`
}

// AIConfig holds shared settings for calling the translation API.
type AIConfig struct {
	// BaseURL is the API root, e.g. "https://ark.cn-beijing.volces.com/api/v3".
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Model is the model identifier passed with every request.
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates requests.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// TranslationConfig holds settings for the translate pipeline.
type TranslationConfig struct {
	AIConfig `yaml:",inline"`

	// TargetLanguage is the language translations are produced in,
	// e.g. "Chinese".
	TargetLanguage string `json:"target_language" yaml:"target_language"`

	// MaxChunkSize caps the byte length of any chunk sent to the API
	// (default 8192).
	MaxChunkSize int `json:"max_chunk_size" yaml:"max_chunk_size"`

	// OutputPrefix is prepended to output filenames in directory mode,
	// e.g. "zh_".
	OutputPrefix string `json:"output_prefix" yaml:"output_prefix"`

	// Concurrency is the number of chunks translated in parallel per file.
	// Values below 2 mean sequential processing.
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	// Pricing is used for cost figures in the batch summary.
	Pricing Pricing `json:"pricing" yaml:"pricing"`
}
