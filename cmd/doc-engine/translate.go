// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doc-engine/internal/chunk"
	"github.com/pdiddy/doc-engine/internal/pathing"
	"github.com/pdiddy/doc-engine/internal/report"
	"github.com/pdiddy/doc-engine/internal/secrets"
	"github.com/pdiddy/doc-engine/internal/translate"
	"github.com/pdiddy/doc-engine/pkg/types"
)

const (
	defaultBaseURL    = "https://ark.cn-beijing.volces.com/api/v3"
	defaultModel      = "ep-20250108123948-xc8vl"
	defaultTargetLang = "Chinese"
	defaultPrefix     = "zh_"
	defaultTimeout    = 300 * time.Second
	secretsDir        = ".secrets/"
)

var translateCmd = &cobra.Command{
	Use:   "translate <input> <output>",
	Short: "Translate Markdown files through the LLM API",
	Long: `Translate sends Markdown files through a hosted chat-completion API,
splitting each document into bounded chunks and reassembling the translated
results in original order. Fenced code blocks pass through untranslated.

Input may be a single .md file or a directory, which is walked recursively;
in directory mode output filenames get the configured prefix. A file that
fails is logged and skipped; the batch continues and the final summary lists
every failure.

The API key is taken from --api-key, then the DOC_ENGINE_API_KEY environment
variable, then .secrets/translation-api-key.`,
	Args: cobra.ExactArgs(2),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().String("api-key", "", "translation API key")
	translateCmd.Flags().String("base-url", defaultBaseURL, "API base URL")
	translateCmd.Flags().String("model", defaultModel, "model identifier")
	translateCmd.Flags().String("target-lang", defaultTargetLang, "target language")
	translateCmd.Flags().String("prefix", defaultPrefix, "output filename prefix in directory mode")
	translateCmd.Flags().Int("max-chunk-size", chunk.DefaultMaxSize, "maximum chunk size in bytes")
	translateCmd.Flags().Int("max-retries", 3, "retry attempts per failed API call")
	translateCmd.Flags().Int("concurrency", 1, "chunks translated in parallel per file")
	translateCmd.Flags().String("report", "", "write a YAML batch report to this path")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := translationConfig(cmd)
	if err != nil {
		return err
	}

	pairs, err := pathing.Resolve(args[0], args[1], []string{".md"}, pathing.MarkdownName(cfg.OutputPrefix))
	if err != nil {
		return err
	}

	backend := translate.NewChatBackend(cfg)
	backend.Client = &http.Client{Timeout: defaultTimeout}

	result := translate.TranslateBatch(cmd.Context(), backend, pairs, cfg, os.Stdout)

	if path, _ := cmd.Flags().GetString("report"); path != "" {
		r := report.Report{
			Command:   "translate",
			Succeeded: result.Translated,
			Failed:    result.Failed,
			Usage:     result.Usage,
			Cost:      result.Usage.Cost(cfg.Pricing),
			Files:     result.Files,
		}
		if err := report.Write(path, r); err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed translation", result.Failed)
	}
	return nil
}

// translationConfig collects flags, environment, and secrets into the
// pipeline configuration. The API key is resolved here so no process-wide
// state is consulted further down.
func translationConfig(cmd *cobra.Command) (types.TranslationConfig, error) {
	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = viper.GetString("api_key") // DOC_ENGINE_API_KEY
	}
	if apiKey == "" {
		apiKey = secrets.APIKey(secretsDir)
	}
	if apiKey == "" {
		return types.TranslationConfig{}, fmt.Errorf(
			"API key required: pass --api-key, set DOC_ENGINE_API_KEY, or create %s%s",
			secretsDir, secrets.KeyTranslationAPI)
	}

	baseURL, _ := cmd.Flags().GetString("base-url")
	model, _ := cmd.Flags().GetString("model")
	targetLang, _ := cmd.Flags().GetString("target-lang")
	prefix, _ := cmd.Flags().GetString("prefix")
	maxChunkSize, _ := cmd.Flags().GetInt("max-chunk-size")
	maxRetries, _ := cmd.Flags().GetInt("max-retries")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	return types.TranslationConfig{
		AIConfig: types.AIConfig{
			BaseURL:    baseURL,
			Model:      model,
			APIKey:     apiKey,
			MaxRetries: maxRetries,
		},
		TargetLanguage: targetLang,
		MaxChunkSize:   maxChunkSize,
		OutputPrefix:   prefix,
		Concurrency:    concurrency,
		Pricing: types.Pricing{
			InputPer1K:  viper.GetFloat64("translate.input_price_per_1k"),
			OutputPer1K: viper.GetFloat64("translate.output_price_per_1k"),
		},
	}, nil
}
