package validation

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/patterns"
)

// weakPhrases are passive or filler openings that ATS-tuned writing replaces with an
// action verb and an outcome.
var weakPhrases = []string{
	"responsible for",
	"duties included",
	"tasked with",
	"worked on",
	"helped with",
	"in charge of",
	"team player",
	"hard worker",
	"detail-oriented",
	"go-getter",
	"think outside the box",
	"results-driven",
}

// WeakPhrases returns a copy of the default weak phrase list.
func WeakPhrases() []string {
	return append([]string(nil), weakPhrases...)
}

// FindWeakPhrases returns the phrases from list that occur in text as whole words, in list
// order. Matching ignores case and surrounding whitespace of the phrases.
func FindWeakPhrases(text string, list []string) []string {
	found := []string{}
	if strings.TrimSpace(text) == "" {
		return found
	}
	for _, phrase := range list {
		normalized := strings.ToLower(strings.TrimSpace(phrase))
		if normalized == "" {
			continue
		}
		if patterns.ContainsWord(text, normalized) {
			found = append(found, normalized)
		}
	}
	return found
}
