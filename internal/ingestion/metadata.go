package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Metadata describes where a resume was loaded from and what happened while loading it
type Metadata struct {
	Source    string   `json:"source,omitempty"`
	Timestamp string   `json:"timestamp"` // RFC3339 format
	Hash      string   `json:"hash"`      // SHA256 hex digest of the raw input
	Bytes     int      `json:"bytes"`
	Warnings  []string `json:"warnings,omitempty"` // Schema findings in lenient mode
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content []byte, source string) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Bytes:     len(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
