package scoring

import (
	"github.com/jonathan/resume-ats/internal/industry"
	"github.com/jonathan/resume-ats/internal/types"
)

// MaxTopMissing caps KeywordAnalysis.TopMissing.
const MaxTopMissing = 10

// AnalyzeKeywords partitions keywords by presence in the normalized document text. Found and
// Missing always partition the full keyword set; TopMissing is the capped view for display.
func AnalyzeKeywords(text string, keywords []string) types.KeywordAnalysis {
	found, missing := industry.Partition(text, keywords)
	top := missing
	if len(top) > MaxTopMissing {
		top = top[:MaxTopMissing]
	}
	return types.KeywordAnalysis{
		Found:      found,
		Missing:    missing,
		TopMissing: append([]string{}, top...),
		Total:      len(keywords),
	}
}
