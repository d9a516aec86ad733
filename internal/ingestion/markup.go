package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockElements end a line when their text is extracted
const blockElements = "p, div, h1, h2, h3, h4, h5, h6, tr, ul, ol"

// StripMarkup converts rich-text HTML produced by resume editors into plain text. List items
// become "- " bullet lines and block elements become line breaks. Text without any markup is
// returned unchanged apart from CleanText normalization.
func StripMarkup(s string) (string, error) {
	if !strings.Contains(s, "<") {
		return CleanText(s), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return "", &MarkupError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		li.PrependHtml("\n- ")
	})
	doc.Find(blockElements).Each(func(_ int, el *goquery.Selection) {
		el.AppendHtml("\n")
	})

	return CleanText(doc.Find("body").Text()), nil
}
