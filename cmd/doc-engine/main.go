// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doc-engine CLI.
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the doc-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "doc-engine",
	Short: "Convert HTML documents to Markdown and translate Markdown files",
	Long: `doc-engine runs two independent document pipelines. The convert command
turns HTML files into Markdown; the translate command sends Markdown files
through a hosted LLM chat API, chunk by chunk, and reassembles the results.

Both commands accept a single file or a directory. Directory inputs are
walked recursively and output paths mirror the input structure.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./doc-engine.yaml or ~/.config/doc-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("doc-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "doc-engine"))
		}
	}

	viper.SetEnvPrefix("DOC_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("translate.input_price_per_1k", 0.0008)
	viper.SetDefault("translate.output_price_per_1k", 0.002)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	// An interrupt cancels the context; the batch stops after the
	// in-flight file and completed outputs stay on disk.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
