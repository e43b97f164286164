package i18n

import (
	"context"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML catalog files.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML content into a catalog tree.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrCatalogLoadCancelled, err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(content, &tree); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	return tree, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
