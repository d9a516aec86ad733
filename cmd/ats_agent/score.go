package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/ingestion"
)

var scoreCmd = &cobra.Command{
	Use:   "score <resume.json>",
	Short: "Print the overall ATS score",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

var scoreJobTitle string

func init() {
	scoreCmd.Flags().StringVarP(&scoreJobTitle, "job-title", "j", "", "Target job title (defaults to the title found in the resume)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	doc, _, err := ingestion.LoadResume(args[0], ingestion.Options{StrictSchema: appCfg.StrictSchema, Logger: logger})
	if err != nil {
		metrics.RecordFailure()
		return err
	}

	printf(cmd.OutOrStdout(), "%d\n", engine.CalculateScore(doc, resolveJobTitle(cmd, scoreJobTitle)))
	return nil
}
