package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// CatalogSource loads catalogs keyed by language code, together with the
// order languages should be registered in. Order matters: the first language
// becomes the fallback of last resort.
type CatalogSource interface {
	Load(ctx context.Context) (map[string]Catalog, []string, error)
}

// MapSource serves catalogs from memory. Useful for tests and hosts that
// embed their catalogs.
type MapSource struct {
	Data map[string]Catalog

	// Order fixes the registration order. When empty, languages are
	// registered in sorted order for determinism.
	Order []string
}

// Load implements the CatalogSource interface.
func (s *MapSource) Load(_ context.Context) (map[string]Catalog, []string, error) {
	if s.Data == nil {
		return map[string]Catalog{}, nil, nil
	}

	order := s.Order
	if len(order) == 0 {
		order = make([]string, 0, len(s.Data))
		for lang := range s.Data {
			order = append(order, lang)
		}
		sort.Strings(order)
	}

	return s.Data, order, nil
}

// DirSource loads one catalog file per language from a directory: "en.json"
// holds the "en" catalog. A missing directory is created; a directory with no
// usable catalog files is seeded with the built-in default catalogs, which
// are persisted back so operators have files to edit. Unparseable files are
// logged and skipped, never aborting the whole load.
type DirSource struct {
	path    string
	parsers []Parser
	log     *slog.Logger
}

// DirSourceOption configures a DirSource.
type DirSourceOption func(*DirSource)

// WithDirParsers replaces the default JSON+YAML parser set.
func WithDirParsers(parsers ...Parser) DirSourceOption {
	return func(s *DirSource) {
		if len(parsers) > 0 {
			s.parsers = parsers
		}
	}
}

// WithDirLogger sets the logger for per-file load warnings.
func WithDirLogger(logger *slog.Logger) DirSourceOption {
	return func(s *DirSource) {
		if logger != nil {
			s.log = logger
		}
	}
}

// NewDirSource creates a directory catalog source. Returns nil if path is
// empty.
func NewDirSource(path string, opts ...DirSourceOption) *DirSource {
	if path == "" {
		return nil
	}
	s := &DirSource{
		path:    path,
		parsers: defaultParsers(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load implements the CatalogSource interface.
func (s *DirSource) Load(ctx context.Context) (map[string]Catalog, []string, error) {
	if err := os.MkdirAll(s.path, 0o755); err != nil {
		return nil, nil, errors.Join(ErrFailedToAccessCatalogDir, err)
	}

	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, nil, errors.Join(ErrFailedToReadCatalogDir, err)
	}

	catalogs := make(map[string]Catalog)
	var order []string

	// os.ReadDir returns entries sorted by name, so load order is stable
	// across restarts.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, nil, errors.Join(ErrCatalogLoadCancelled, err)
		}

		parser := parserFor(s.parsers, entry.Name())
		if parser == nil {
			continue
		}

		lang := langFromFilename(entry.Name())
		if lang == "" {
			continue
		}

		filePath := filepath.Join(s.path, entry.Name())
		content, err := os.ReadFile(filePath)
		if err != nil {
			s.log.WarnContext(ctx, "failed to read catalog file, skipping", "file", filePath, "error", err)
			continue
		}

		tree, err := parser.Parse(ctx, content)
		if err != nil {
			s.log.WarnContext(ctx, "failed to parse catalog file, skipping", "file", filePath, "error", err)
			continue
		}

		if _, exists := catalogs[lang]; !exists {
			order = append(order, lang)
		}
		catalogs[lang] = tree
	}

	if len(catalogs) == 0 {
		s.log.InfoContext(ctx, "no catalog files found, seeding defaults", "dir", s.path)
		for _, lang := range defaultLanguageOrder {
			tree := defaultCatalog(lang)
			catalogs[lang] = tree
			order = append(order, lang)
			s.persist(ctx, lang, tree)
		}
	}

	return catalogs, order, nil
}

// persist writes a synthesized catalog back to disk. Failure is logged only:
// the in-memory catalog is already usable.
func (s *DirSource) persist(ctx context.Context, lang string, tree Catalog) {
	content, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		s.log.WarnContext(ctx, "failed to encode default catalog", "lang", lang, "error", err)
		return
	}
	filePath := filepath.Join(s.path, lang+".json")
	if err := os.WriteFile(filePath, content, 0o644); err != nil {
		s.log.WarnContext(ctx, "failed to persist default catalog", "file", filePath, "error", err)
	}
}
