// Package industry resolves job titles to static keyword profiles used as the relevance
// ground truth for scoring.
package industry

import (
	"strings"
)

// MaxKeywordSuggestions caps KeywordSuggestions.
const MaxKeywordSuggestions = 10

// Profile is the keyword reference set for one industry. Profiles are never mutated after
// package initialization; accessors return copies.
type Profile struct {
	Name           string
	Technical      []string
	Skills         []string // soft skills
	Tools          []string
	Certifications []string
	Action         []string // industry-specific action verbs
}

// defaultProfileName is the fallback when no industry matches.
const defaultProfileName = "Software Engineer"

// Lookup resolves a free-text job title to a profile using case-insensitive, bidirectional
// substring containment against the known industry names. The first match in declaration
// order wins. Blank or unknown titles resolve to the default profile.
func Lookup(jobTitle string) Profile {
	title := strings.ToLower(strings.TrimSpace(jobTitle))
	if title == "" {
		return Default()
	}
	for _, p := range profiles {
		name := strings.ToLower(p.Name)
		if strings.Contains(title, name) || strings.Contains(name, title) {
			return p.clone()
		}
	}
	return Default()
}

// Default returns the generic fallback profile.
func Default() Profile {
	for _, p := range profiles {
		if p.Name == defaultProfileName {
			return p.clone()
		}
	}
	return profiles[0].clone()
}

// Names lists the known industries in lookup order.
func Names() []string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return names
}

// Keywords returns technical, soft-skill and tool keywords, deduplicated in that order.
func (p Profile) Keywords() []string {
	return dedupe(p.Technical, p.Skills, p.Tools)
}

// KeywordSuggestions returns up to MaxKeywordSuggestions technical and soft-skill keywords
// for the profile resolved from jobTitle.
func KeywordSuggestions(jobTitle string) []string {
	p := Lookup(jobTitle)
	keywords := dedupe(p.Technical, p.Skills)
	if len(keywords) > MaxKeywordSuggestions {
		keywords = keywords[:MaxKeywordSuggestions]
	}
	return keywords
}

// Density returns the percentage (0-100) of keywords found in text as case-insensitive
// substrings, so "java" counts inside "javascript". An empty keyword set yields 0.
func Density(text string, keywords []string) float64 {
	if len(keywords) == 0 || strings.TrimSpace(text) == "" {
		return 0
	}
	lower := strings.ToLower(text)
	found := 0
	for _, kw := range keywords {
		if containsKeyword(lower, kw) {
			found++
		}
	}
	return float64(found) / float64(len(keywords)) * 100
}

// Partition splits keywords into those present in text and those absent, preserving order.
// Presence is the same substring test Density uses.
func Partition(text string, keywords []string) (found, missing []string) {
	lower := strings.ToLower(text)
	found = make([]string, 0, len(keywords))
	missing = make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if containsKeyword(lower, kw) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return found, missing
}

// containsKeyword expects lowerText already lowercased.
func containsKeyword(lowerText, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	return keyword != "" && strings.Contains(lowerText, keyword)
}

func (p Profile) clone() Profile {
	return Profile{
		Name:           p.Name,
		Technical:      append([]string(nil), p.Technical...),
		Skills:         append([]string(nil), p.Skills...),
		Tools:          append([]string(nil), p.Tools...),
		Certifications: append([]string(nil), p.Certifications...),
		Action:         append([]string(nil), p.Action...),
	}
}

func dedupe(lists ...[]string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, list := range lists {
		for _, kw := range list {
			if !seen[kw] {
				seen[kw] = true
				out = append(out, kw)
			}
		}
	}
	return out
}
