// Package parsing provides canonicalisation helpers for skill names and resume dates.
package parsing

import (
	"strings"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":                     "Go",
	"go lang":                    "Go",
	"javascript":                 "JavaScript",
	"js":                         "JavaScript",
	"typescript":                 "TypeScript",
	"ts":                         "TypeScript",
	"k8s":                        "Kubernetes",
	"kubernetes":                 "Kubernetes",
	"react.js":                   "React",
	"reactjs":                    "React",
	"vue.js":                     "Vue",
	"vuejs":                      "Vue",
	"node.js":                    "Node.js",
	"nodejs":                     "Node.js",
	"node":                       "Node.js",
	"postgres":                   "PostgreSQL",
	"postgresql":                 "PostgreSQL",
	"ml":                         "Machine Learning",
	"ms excel":                   "Excel",
	"rest":                       "REST API",
	"restful api":                "REST API",
	"ci cd":                      "CI/CD",
	"cicd":                       "CI/CD",
	"amazon web services":        "AWS",
	"electronic medical records": "Electronic Health Records",
	"ehr":                        "Electronic Health Records",
	"emr":                        "Electronic Health Records",
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	if skillName == "" {
		return ""
	}

	normalized := strings.TrimSpace(skillName)

	// Check for exact match in normalization map (case-insensitive)
	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// All-caps single words that aren't in the map: capitalize first letter only
	if normalized == strings.ToUpper(normalized) && len(normalized) > 1 && !strings.Contains(lower, " ") {
		return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
	}

	// Mixed case is kept as written
	if normalized != strings.ToUpper(normalized) && normalized != strings.ToLower(normalized) {
		return normalized
	}

	// All lowercase single word: capitalize first letter
	if normalized == lower && !strings.Contains(normalized, " ") && len(normalized) > 0 {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// SkillKey returns the lowercase canonical form used for comparisons.
func SkillKey(skillName string) string {
	return strings.ToLower(NormalizeSkillName(skillName))
}

// MatchesKeyword reports whether a skill name and a reference keyword name the same thing:
// equal canonical forms, or one canonical form containing the other as a whole phrase.
func MatchesKeyword(skillName, keyword string) bool {
	s := SkillKey(skillName)
	k := SkillKey(keyword)
	if s == "" || k == "" {
		return false
	}
	if s == k {
		return true
	}
	return containsPhrase(s, k) || containsPhrase(k, s)
}

// containsPhrase reports whether needle occurs in haystack at word boundaries.
func containsPhrase(haystack, needle string) bool {
	idx := strings.Index(haystack, needle)
	for idx >= 0 {
		end := idx + len(needle)
		startOK := idx == 0 || !isWordByte(haystack[idx-1])
		endOK := end == len(haystack) || !isWordByte(haystack[end])
		if startOK && endOK {
			return true
		}
		next := strings.Index(haystack[idx+1:], needle)
		if next < 0 {
			break
		}
		idx += next + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
