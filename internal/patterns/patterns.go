// Package patterns provides stateless detectors for quantified metrics, action verbs and
// bullet structure in free text.
package patterns

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// metricPatterns detect quantified achievements. Go regexps carry no match position between
// calls, so every call starts from the beginning of its input.
var metricPatterns = []*regexp.Regexp{
	// percentages: 25%, 12.5 %
	regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*%`),
	// currency with optional K/M/B suffix: $500k, $1.2M, $ 10,000
	regexp.MustCompile(`(?i)\$\s?\d+(?:[.,]\d+)*(?:\s?[kmb]\b)?`),
	// counted nouns: 10,000 users, 12 team members
	regexp.MustCompile(`(?i)\d+(?:[.,]\d+)*\+?\s*(?:users|customers|clients|team members|employees|people|engineers|members|patients|students)\b`),
	// durations: 3 years, 6 months
	regexp.MustCompile(`(?i)\d+\+?\s*(?:years?|months?|weeks?|days?|hours?)\b`),
	// verb-by-number: increased revenue by 25%
	regexp.MustCompile(`(?i)\b(?:increased|reduced|improved|grew|decreased|boosted|raised|cut)\s+(?:[a-z-]+\s+){0,3}by\s+\d+(?:\.\d+)?\s*%?`),
	// finance verb and amount: saved $40k, revenue of $2M
	regexp.MustCompile(`(?i)\b(?:saved|revenue|budget)\s+(?:[a-z-]+\s+){0,3}\$\s?\d+(?:[.,]\d+)*(?:\s?[kmb]\b)?`),
}

// HasMetrics reports whether text contains at least one quantified metric.
func HasMetrics(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	for _, re := range metricPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

type span struct {
	start, end int
}

// ExtractMetrics returns the metric phrases in text in order of first occurrence.
// Overlapping matches collapse to the longest one and duplicates are dropped.
func ExtractMetrics(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var spans []span
	for _, re := range metricPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, span{start: loc[0], end: loc[1]})
		}
	}

	// earliest first; for equal starts the longer match wins
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})

	metrics := make([]string, 0, len(spans))
	seen := make(map[string]bool)
	lastEnd := -1
	for _, s := range spans {
		if s.start < lastEnd {
			continue
		}
		lastEnd = s.end
		m := strings.TrimSpace(text[s.start:s.end])
		if m == "" || seen[strings.ToLower(m)] {
			continue
		}
		seen[strings.ToLower(m)] = true
		metrics = append(metrics, m)
	}
	return metrics
}

// wordPatterns caches compiled whole-word matchers. Entries are immutable once stored.
var wordPatterns sync.Map

func wordPattern(word string) *regexp.Regexp {
	key := strings.ToLower(word)
	if re, ok := wordPatterns.Load(key); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`)
	actual, _ := wordPatterns.LoadOrStore(key, re)
	return actual.(*regexp.Regexp)
}

// CountActionVerbs counts every whole-word, case-insensitive occurrence of each verb in text.
// Verbs repeated in the list are counted once.
func CountActionVerbs(text string, verbs []string) int {
	if strings.TrimSpace(text) == "" || len(verbs) == 0 {
		return 0
	}

	count := 0
	seen := make(map[string]bool, len(verbs))
	for _, verb := range verbs {
		v := strings.ToLower(strings.TrimSpace(verb))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		count += len(wordPattern(v).FindAllStringIndex(text, -1))
	}
	return count
}

var bulletLine = regexp.MustCompile(`^\s*(?:[-*•–‐]|\d+\.)`)

// CountBulletPoints counts lines that start with a bullet marker or an "N." enumerator.
func CountBulletPoints(text string) int {
	if text == "" {
		return 0
	}
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if bulletLine.MatchString(line) {
			count++
		}
	}
	return count
}

// ContainsWord reports whether phrase occurs in text delimited by non-word characters,
// ignoring case.
func ContainsWord(text, phrase string) bool {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" || text == "" {
		return false
	}
	return wordPattern(phrase).MatchString(text)
}
