package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser implements the Parser interface for JSON catalog files.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON content into a catalog tree.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrCatalogLoadCancelled, err)
	}

	var tree map[string]any
	if err := json.Unmarshal(content, &tree); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	return tree, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}
