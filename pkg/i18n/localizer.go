package i18n

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Config is the static configuration surface of the localizer, read once at
// initialization. Load it through pkg/config.
type Config struct {
	CatalogDir    string `env:"LOCALE_CATALOG_DIR" envDefault:"./locales"`     // CatalogDir is the directory holding one catalog file per language.
	UserQuery     string `env:"LOCALE_USER_QUERY"`                             // UserQuery overrides the user preference query template.
	GuildQuery    string `env:"LOCALE_GUILD_QUERY"`                            // GuildQuery overrides the guild preference query template.
	GuildFallback bool   `env:"LOCALE_GUILD_FALLBACK" envDefault:"true"`       // GuildFallback enables the guild preference detection stage.
	Debug         bool   `env:"LOCALE_DEBUG" envDefault:"false"`               // Debug logs missing translations.
}

// Localizer is the single externally invoked surface: it composes argument
// parsing, language detection, catalog lookup and interpolation. Each
// Localize call is an independent unit of work; concurrent calls share only
// the catalog store, which is safe for concurrent readers.
type Localizer struct {
	store *Store
	res   *resolver
	log   *slog.Logger
	debug bool
}

// New creates a Localizer, loading catalogs from source. A nil source starts
// empty. When the source yields no catalogs at all, built-in default catalogs
// are seeded so the localizer always has a first language to fall back to.
func New(ctx context.Context, source CatalogSource, opts ...Option) (*Localizer, error) {
	l := &Localizer{
		store: NewStore(),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
		res: &resolver{
			userQuery:     DefaultUserQuery,
			guildQuery:    DefaultGuildQuery,
			guildFallback: true,
		},
	}

	for _, opt := range opts {
		opt(l)
	}
	l.res.log = l.log

	if source != nil {
		catalogs, order, err := source.Load(ctx)
		if err != nil {
			return nil, err
		}
		for _, lang := range order {
			l.store.Upsert(lang, catalogs[lang])
		}
	}

	if len(l.store.Languages()) == 0 {
		for _, lang := range defaultLanguageOrder {
			l.store.Upsert(lang, defaultCatalog(lang))
		}
	}

	l.log.InfoContext(ctx, "catalogs loaded", "languages", l.store.Languages())
	return l, nil
}

// Localize resolves key to interpolated text for the caller.
//
// The language is taken from an explicit override in rawArgs when present,
// otherwise detected through the resolver chain, otherwise the first loaded
// language. A key missing in the resolved language retries the first loaded
// language; a key missing everywhere returns the key itself verbatim. The
// only error condition is an empty key.
func (l *Localizer) Localize(ctx context.Context, key string, rawArgs []string, caller Caller) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrEmptyKey
	}

	args := ParseArgs(rawArgs)

	var lang string
	if args.Override {
		lang = args.Lang
	} else if code := l.res.Resolve(ctx, caller, l.store); code != "" {
		lang = code
	}
	if lang == "" {
		if first, ok := l.store.FirstAvailable(); ok {
			lang = first
		}
	}

	template, found := l.store.Get(key, lang)
	if !found {
		if first, ok := l.store.FirstAvailable(); ok && first != lang {
			template, found = l.store.Get(key, first)
		}
	}
	if !found {
		if l.debug {
			l.log.DebugContext(ctx, "translation missing, returning key", "key", key, "lang", lang)
		}
		return key, nil
	}

	return Interpolate(template, args), nil
}

// AddLocale registers or replaces a catalog at runtime. Replacement swaps the
// whole tree atomically; the code keeps its original load-order position.
func (l *Localizer) AddLocale(code string, c Catalog) error {
	if strings.TrimSpace(code) == "" {
		return ErrEmptyLanguageCode
	}
	if c == nil {
		return ErrNilCatalog
	}
	l.store.Upsert(code, c)
	return nil
}

// HasLocale reports whether a catalog is loaded for the language code.
func (l *Localizer) HasLocale(code string) bool {
	return l.store.Has(code)
}

// Locales returns loaded language codes in load order.
func (l *Localizer) Locales() []string {
	return l.store.Languages()
}

// FirstAvailable returns the language loaded first, the fallback of last
// resort.
func (l *Localizer) FirstAvailable() (string, bool) {
	return l.store.FirstAvailable()
}
