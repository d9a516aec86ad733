package scoring

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-ats/internal/types"
)

// DefaultCacheSize bounds the number of normalized documents kept by NewTextCache(0).
const DefaultCacheSize = 128

// eachTextField calls fn for every free-text field of doc in a fixed order. NormalizedText and
// the cache key both read the document through it, so they always agree on what "the text" is.
func eachTextField(doc types.ResumeDocument, fn func(string)) {
	add := func(values ...string) {
		for _, v := range values {
			fn(v)
		}
	}

	p := doc.PersonalInfo
	add(p.JobTitle, p.Summary)
	for _, e := range doc.Experience {
		add(e.Title, e.Company, e.Description)
	}
	for _, s := range doc.Skills {
		add(s.Name)
	}
	for _, e := range doc.Education {
		add(e.Degree, e.Field, e.Honors)
		add(e.Coursework...)
	}
	for _, c := range doc.Certifications {
		add(c.Name, c.Issuer)
	}
}

// NormalizedText lowercases and joins every free-text field of doc, one field per line, with
// inner whitespace collapsed.
func NormalizedText(doc types.ResumeDocument) string {
	var parts []string
	eachTextField(doc, func(v string) {
		if v = strings.Join(strings.Fields(v), " "); v != "" {
			parts = append(parts, strings.ToLower(v))
		}
	})
	return strings.Join(parts, "\n")
}

// TextCache memoizes NormalizedText in a least-recently-used cache keyed by a hash of the
// document's free-text fields, so any change to that text yields a different key and stale
// text is never served. It is safe for concurrent use; concurrent requests for the same
// document share one computation.
type TextCache struct {
	entries *lru.Cache[string, string]
	group   singleflight.Group

	mu     sync.Mutex
	hits   int
	misses int
}

// NewTextCache creates a cache holding at most maxEntries documents. Values <= 0 use
// DefaultCacheSize.
func NewTextCache(maxEntries int) *TextCache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheSize
	}
	// lru.New only fails for a non-positive size
	entries, _ := lru.New[string, string](maxEntries)
	return &TextCache{entries: entries}
}

// Normalized returns NormalizedText(doc), computing it at most once per distinct text while it
// stays cached.
func (c *TextCache) Normalized(doc types.ResumeDocument) string {
	key := documentKey(doc)

	if text, ok := c.entries.Get(key); ok {
		c.count(true)
		return text
	}
	c.count(false)

	v, _, _ := c.group.Do(key, func() (any, error) {
		text := NormalizedText(doc)
		c.entries.Add(key, text)
		return text, nil
	})
	return v.(string)
}

func (c *TextCache) count(hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}

// Stats returns cache hits and misses since creation.
func (c *TextCache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// documentKey hashes the length-prefixed free-text fields, which keeps field boundaries
// unambiguous.
func documentKey(doc types.ResumeDocument) string {
	h := sha256.New()
	eachTextField(doc, func(v string) {
		h.Write([]byte(strconv.Itoa(len(v))))
		h.Write([]byte{':'})
		h.Write([]byte(v))
	})
	return hex.EncodeToString(h.Sum(nil))
}
