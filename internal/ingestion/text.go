// Package ingestion loads resume documents from disk and normalizes their free-text fields
// before analysis.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRun     = regexp.MustCompile(`[ \t\f\v]+`)
	blankLineRun = regexp.MustCompile(`\n\n\n+`)
)

// bulletGlyphs are rewritten to the Markdown "- " bullet so the bullet counter sees them.
var bulletGlyphs = []string{"• ", "· ", "▪ ", "◦ ", "‣ ", "* "}

// CleanText cleans and normalizes text content while preserving line structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses whitespace runs and canonicalizes bullet markers
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(trimmed, glyph) {
			trimmed = "- " + strings.TrimSpace(trimmed[len(glyph):])
			break
		}
	}
	return spaceRun.ReplaceAllString(trimmed, " ")
}
