package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Metadata describes an ingested resume document.
type Metadata struct {
	Filename  string `json:"filename,omitempty"`
	Format    string `json:"format,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the cleaned text
	Bytes     int    `json:"bytes"`
	Words     int    `json:"words"`
}

// NewMetadata creates a Metadata instance for cleaned resume text with the
// current timestamp.
func NewMetadata(content, filename, format string) *Metadata {
	return &Metadata{
		Filename:  filename,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Bytes:     len(content),
		Words:     len(strings.Fields(content)),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
