package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/industry"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the top keywords for a job title",
	Long: "Keywords prints the most important industry keywords for the given job title, one per line. " +
		"With --list it prints the known industries instead.",
	Args: cobra.NoArgs,
	RunE: runKeywords,
}

var (
	keywordsJobTitle string
	keywordsFormat   string
	keywordsList     bool
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsJobTitle, "job-title", "j", "", "Target job title")
	keywordsCmd.Flags().StringVarP(&keywordsFormat, "format", "f", formatText, "Output format (text, json)")
	keywordsCmd.Flags().BoolVar(&keywordsList, "list", false, "List the known industries")

	keywordsCmd.MarkFlagsOneRequired("job-title", "list")
	keywordsCmd.MarkFlagsMutuallyExclusive("job-title", "list")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	var keywords []string
	if keywordsList {
		keywords = industry.Names()
	} else {
		keywords = engine.KeywordSuggestions(keywordsJobTitle)
	}

	if keywordsFormat == formatJSON {
		data, err := marshalJSON(keywords)
		if err != nil {
			return err
		}
		return writeOutput(cmd, "", data)
	}
	if len(keywords) == 0 {
		return nil
	}
	printf(cmd.OutOrStdout(), "%s\n", strings.Join(keywords, "\n"))
	return nil
}
