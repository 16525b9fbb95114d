// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doc-engine/internal/container"
	"github.com/pdiddy/doc-engine/internal/convert"
	"github.com/pdiddy/doc-engine/internal/pathing"
	"github.com/pdiddy/doc-engine/internal/report"
	"github.com/pdiddy/doc-engine/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert HTML files to Markdown",
	Long: `Convert transforms HTML files into Markdown, keeping links, images,
and tables. Input may be a single .html/.htm file or a directory, which is
walked recursively; output paths mirror the input structure. Existing output
files are overwritten.

Backends: native (in-process, default) or pandoc (requires a local docker or
podman with the pandoc/core image).`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("backend", "", "conversion backend: native or pandoc (default native)")
	convertCmd.Flags().String("report", "", "write a YAML batch report to this path")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	backend, _ := cmd.Flags().GetString("backend")
	if backend == "" {
		backend = viper.GetString("convert.backend")
	}

	engine, err := buildEngine(types.ConversionBackend(backend))
	if err != nil {
		return err
	}

	pairs, err := pathing.Resolve(args[0], args[1], []string{".html", ".htm"}, pathing.MarkdownName(""))
	if err != nil {
		return err
	}

	result := convert.ConvertBatch(engine, pairs, os.Stdout)

	if path, _ := cmd.Flags().GetString("report"); path != "" {
		r := report.Report{
			Command:   "convert",
			Succeeded: result.Converted,
			Failed:    result.Failed,
			Files:     result.Files,
		}
		if err := report.Write(path, r); err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func buildEngine(backend types.ConversionBackend) (convert.Engine, error) {
	switch backend {
	case types.BackendNative, "":
		return convert.NativeEngine{}, nil
	case types.BackendPandoc:
		rt, err := container.Detect()
		if err != nil {
			return nil, err
		}
		return convert.NewPandocEngine(rt)
	default:
		return nil, fmt.Errorf("unknown conversion backend %q (want native or pandoc)", backend)
	}
}
