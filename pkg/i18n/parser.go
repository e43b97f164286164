package i18n

import (
	"context"
	"strings"
)

// Parser parses one catalog file (a single language's tree) from its raw
// content. Catalog sources pick a parser per file by extension.
type Parser interface {
	// Parse processes raw file content into a catalog tree.
	Parse(ctx context.Context, content []byte) (Catalog, error)

	// SupportsFileExtension checks if the parser handles a file extension.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// defaultParsers returns the parsers a source uses when none are configured.
func defaultParsers() []Parser {
	return []Parser{NewJSONParser(), NewYAMLParser()}
}

// parserFor picks the first parser supporting the filename's extension, or
// nil when the file is not a catalog file.
func parserFor(parsers []Parser, filename string) Parser {
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = filename[idx+1:]
	}
	if ext == "" {
		return nil
	}
	for _, p := range parsers {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// langFromFilename derives the language code from a catalog filename:
// "en.json" holds the "en" catalog.
func langFromFilename(filename string) string {
	base := filename
	if idx := strings.LastIndex(base, "/"); idx != -1 {
		base = base[idx+1:]
	}
	if idx := strings.LastIndex(base, "."); idx != -1 {
		base = base[:idx]
	}
	return strings.ToLower(strings.TrimSpace(base))
}
