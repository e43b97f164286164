package i18n

import (
	"log/slog"

	"github.com/dmitrymomot/localekit/pkg/prefs"
)

// Option configures a Localizer during construction.
type Option func(*Localizer)

// WithLogger provides a logger for load reports and lookup warnings.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Localizer) {
		if logger != nil {
			l.log = logger
		}
	}
}

// WithDebug enables logging of missing translations.
func WithDebug(debug bool) Option {
	return func(l *Localizer) {
		l.debug = debug
	}
}

// WithInterpreter wires the host's template-engine interpreter as the primary
// path for preference queries.
func WithInterpreter(interp Interpreter) Option {
	return func(l *Localizer) {
		l.res.interp = interp
	}
}

// WithVarStore wires a direct variable store, used when no interpreter is
// configured or the interpreter fails.
func WithVarStore(store prefs.VarStore) Option {
	return func(l *Localizer) {
		l.res.vars = store
	}
}

// WithDetectionHook installs a custom detection stage that runs before any
// preference lookup.
func WithDetectionHook(hook DetectionHook) Option {
	return func(l *Localizer) {
		l.res.hook = hook
	}
}

// WithUserQuery overrides the user preference query template.
// Placeholders {userId}, {guildId} and {channelId} are substituted from the
// caller.
func WithUserQuery(tmpl string) Option {
	return func(l *Localizer) {
		if tmpl != "" {
			l.res.userQuery = tmpl
		}
	}
}

// WithGuildQuery overrides the guild preference query template.
func WithGuildQuery(tmpl string) Option {
	return func(l *Localizer) {
		if tmpl != "" {
			l.res.guildQuery = tmpl
		}
	}
}

// WithGuildFallback toggles the guild preference detection stage.
func WithGuildFallback(enabled bool) Option {
	return func(l *Localizer) {
		l.res.guildFallback = enabled
	}
}

// FromConfig applies the static configuration surface in one option.
func FromConfig(cfg Config) Option {
	return func(l *Localizer) {
		WithUserQuery(cfg.UserQuery)(l)
		WithGuildQuery(cfg.GuildQuery)(l)
		WithGuildFallback(cfg.GuildFallback)(l)
		WithDebug(cfg.Debug)(l)
	}
}
