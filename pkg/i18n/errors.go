package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding
// implementation details. Catalog-load errors abort initialization; everything
// after startup recovers locally and never surfaces to the command caller.
var (
	// Caller mistakes
	ErrEmptyKey          = errors.New("translation key is empty")
	ErrEmptyLanguageCode = errors.New("language code is empty")
	ErrNilCatalog        = errors.New("catalog tree is nil")

	// Catalog source operations
	ErrFailedToAccessCatalogDir = errors.New("failed to access catalog directory")
	ErrFailedToReadCatalogDir   = errors.New("failed to read catalog directory")
	ErrCatalogLoadCancelled     = errors.New("catalog loading cancelled")

	// Catalog file parsing
	ErrFailedToParseJSON = errors.New("failed to parse JSON catalog")
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog")

	// S3 source operations
	ErrInvalidS3Config            = errors.New("invalid s3 source config")
	ErrFailedToListCatalogObjects = errors.New("failed to list catalog objects")
)
