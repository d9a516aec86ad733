package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/export"
	"github.com/jonathan/resume-ats/internal/ingestion"
	"github.com/jonathan/resume-ats/internal/rendering"
)

var reportCmd = &cobra.Command{
	Use:   "report <resume.json>",
	Short: "Render an HTML or PDF analysis report",
	Long: "Report renders the analysis as a standalone HTML page. When --out ends in .pdf the page " +
		"is printed to PDF with headless Chrome, which must be installed.",
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

var (
	reportJobTitle string
	reportOut      string
	reportTemplate string
)

func init() {
	reportCmd.Flags().StringVarP(&reportJobTitle, "job-title", "j", "", "Target job title (defaults to the title found in the resume)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "Output file, .html or .pdf (required)")
	reportCmd.Flags().StringVarP(&reportTemplate, "template", "t", "", "Custom html/template file")

	_ = reportCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ext := strings.ToLower(filepath.Ext(reportOut))
	if ext != ".html" && ext != ".htm" && ext != ".pdf" {
		return fmt.Errorf("--out must end in .html or .pdf, got %q", reportOut)
	}

	doc, _, err := ingestion.LoadResume(args[0], ingestion.Options{StrictSchema: appCfg.StrictSchema, Logger: logger})
	if err != nil {
		metrics.RecordFailure()
		return err
	}
	result := engine.Analyze(doc, resolveJobTitle(cmd, reportJobTitle))

	var html string
	if reportTemplate != "" {
		html, err = rendering.RenderReportHTMLWithTemplate(reportTemplate, doc, result)
	} else {
		html, err = rendering.RenderReportHTML(doc, result)
	}
	if err != nil {
		return err
	}

	if ext != ".pdf" {
		return writeOutput(cmd, reportOut, []byte(html))
	}

	pdfCfg := appCfg.PDF
	pdf, err := export.PrintPDF(cmd.Context(), html, export.Options{
		Timeout:         pdfCfg.Timeout,
		PaperWidth:      pdfCfg.PaperWidth,
		PaperHeight:     pdfCfg.PaperHeight,
		PrintBackground: pdfCfg.PrintBackground,
		Landscape:       pdfCfg.Landscape,
		Logger:          logger,
	})
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, reportOut, pdf); err != nil {
		return err
	}
	logger.Info("Wrote PDF report", zap.String("path", reportOut), zap.Int("bytes", len(pdf)))
	return nil
}
