package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/observability"
	"github.com/jonathan/resume-ats/internal/types"
)

// Output formats
const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatMarkdown:
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use text, json or markdown", format)
	}
}

// resolveJobTitle prefers the command flag over the configured default.
func resolveJobTitle(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("job-title") {
		return flagValue
	}
	return appCfg.JobTitle
}

// resolveFormat prefers the command flag over the configured default.
func resolveFormat(cmd *cobra.Command, flagValue string) (string, error) {
	format := appCfg.Format
	if cmd.Flags().Changed("format") {
		format = flagValue
	}
	return format, checkFormat(format)
}

// renderAnalysis formats one result.
func renderAnalysis(result *types.AnalysisResult, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		return marshalJSON(result)
	case formatMarkdown:
		var buf bytes.Buffer
		if err := observability.WriteMarkdown(&buf, result); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		var buf bytes.Buffer
		observability.NewPrinter(&buf).PrintAnalysis(result)
		return buf.Bytes(), nil
	}
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// writeOutput writes data to outPath, or to the command's stdout when outPath is empty.
func writeOutput(cmd *cobra.Command, outPath string, data []byte) error {
	if outPath == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
