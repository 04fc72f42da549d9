package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for document formats the ingester cannot
// extract text from.
var ErrUnsupportedFormat = fmt.Errorf("unsupported document format")

// textExtensions are the formats read as plain text.
var textExtensions = map[string]bool{
	".txt": true,
	".md":  true,
	"":     true,
}

// htmlExtensions are the formats parsed as HTML before cleaning.
var htmlExtensions = map[string]bool{
	".html": true,
	".htm":  true,
}

// SupportedFile reports whether the ingester can extract text from the file.
func SupportedFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return textExtensions[ext] || htmlExtensions[ext]
}

// IngestFromFile reads a resume document, extracts its text, cleans it, and
// returns the cleaned text with metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	return IngestBytes(content, filepath.Base(path))
}

// IngestBytes extracts and cleans resume text from an in-memory document,
// typically an upload. name decides the format by extension.
func IngestBytes(content []byte, name string) (string, *Metadata, error) {
	ext := strings.ToLower(filepath.Ext(name))

	var text string
	var format string
	switch {
	case htmlExtensions[ext]:
		extracted, err := ExtractHTMLText(string(content))
		if err != nil {
			return "", nil, err
		}
		text = extracted
		format = "html"
	case textExtensions[ext]:
		text = string(content)
		format = "text"
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	cleaned := CleanText(text)
	return cleaned, NewMetadata(cleaned, name, format), nil
}
