package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/ingestion"
	"github.com/jonathan/resume-ats/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.json>...",
	Short: "Analyze one or more resumes",
	Long: "Analyze scores each resume, reports per-section results, keyword coverage and metrics, " +
		"and lists up to six prioritized suggestions. Several files are analyzed concurrently.",
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeJobTitle string
	analyzeFormat   string
	analyzeOut      string
	analyzeStrict   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobTitle, "job-title", "j", "", "Target job title (defaults to the title found in the resume)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", formatText, "Output format (text, json, markdown)")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write output to this file instead of stdout")
	analyzeCmd.Flags().BoolVar(&analyzeStrict, "strict", false, "Fail on resumes that do not match the resume schema")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(cmd, analyzeFormat)
	if err != nil {
		return err
	}
	jobTitle := resolveJobTitle(cmd, analyzeJobTitle)
	opts := ingestion.Options{StrictSchema: appCfg.StrictSchema || analyzeStrict, Logger: logger}

	if len(args) == 1 {
		doc, _, err := ingestion.LoadResume(args[0], opts)
		if err != nil {
			metrics.RecordFailure()
			return err
		}
		data, err := renderAnalysis(engine.Analyze(doc, jobTitle), format)
		if err != nil {
			return err
		}
		return writeOutput(cmd, analyzeOut, data)
	}

	result, err := pipeline.Run(cmd.Context(), engine, args, pipeline.RunOptions{
		JobTitle:    jobTitle,
		Concurrency: appCfg.Concurrency,
		Ingestion:   opts,
		Failures:    metrics,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	data, err := renderBatch(result, format)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, analyzeOut, data); err != nil {
		return err
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d resumes could not be analyzed: %w", result.Failed, len(args), result.Errors())
	}
	return nil
}

func renderBatch(result *pipeline.Result, format string) ([]byte, error) {
	if format == formatJSON {
		return marshalJSON(result)
	}

	var buf bytes.Buffer
	for i, f := range result.Files {
		if i > 0 {
			buf.WriteString("\n")
		}
		if format == formatMarkdown {
			printf(&buf, "<!-- %s -->\n", f.Path)
		} else {
			printf(&buf, "== %s ==\n", f.Path)
		}
		if f.Err != nil {
			printf(&buf, "error: %v\n", f.Err)
			continue
		}
		data, err := renderAnalysis(f.Analysis, format)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}
