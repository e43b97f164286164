package i18n

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/prefs"
)

// Default preference query templates. Placeholders {userId}, {guildId} and
// {channelId} are substituted from the caller before dispatch.
const (
	DefaultUserQuery  = "getUserVar[language;{userId}]"
	DefaultGuildQuery = "getServerVar[language;{guildId}]"
)

// Interpreter executes a preference query through the host's template engine.
// Implementations are provided by the embedding bot framework. An error
// return means the interpreter path is unavailable for this query; the
// resolver then falls back to direct store access.
type Interpreter interface {
	Eval(ctx context.Context, query string, caller Caller) (string, error)
}

// DetectionHook is an optional custom detection stage that runs before any
// preference lookup. Its result is validated against the store like any other
// candidate, never trusted blindly.
type DetectionHook func(ctx context.Context, caller Caller) string

// lookupOutcome is the tri-state result of one external preference lookup.
// Modeling failure as a value keeps the chain logic free of error plumbing:
// resolution itself can never fail.
type lookupOutcome int

const (
	lookupEmpty lookupOutcome = iota
	lookupFound
	lookupUnavailable
)

type lookupResult struct {
	outcome lookupOutcome
	value   string
}

// resolver walks the detection chain: custom hook, user preference, guild
// preference. Each stage either yields a validated language code or defers to
// the next; external failures are logged and treated as "no result".
type resolver struct {
	hook          DetectionHook
	interp        Interpreter
	vars          prefs.VarStore
	userQuery     string
	guildQuery    string
	guildFallback bool
	log           *slog.Logger
}

// Resolve returns a validated language code, or "" when no stage produced
// one and the caller should fall back to the store's first language.
func (r *resolver) Resolve(ctx context.Context, caller Caller, store *Store) string {
	if r.hook != nil {
		if code := normalizeLang(r.hook(ctx, caller)); code != "" && store.Has(code) {
			return code
		}
	}

	if caller.UserID != "" && r.userQuery != "" {
		if code := r.lookupStage(ctx, r.userQuery, caller, store); code != "" {
			return code
		}
	}

	if r.guildFallback && caller.GuildID != "" && r.guildQuery != "" {
		if code := r.lookupStage(ctx, r.guildQuery, caller, store); code != "" {
			return code
		}
	}

	return ""
}

// lookupStage substitutes the caller into one query template, dispatches it,
// and validates the result against the store.
func (r *resolver) lookupStage(ctx context.Context, tmpl string, caller Caller, store *Store) string {
	query := substituteQuery(tmpl, caller)

	res := r.dispatch(ctx, query, caller)
	if res.outcome != lookupFound {
		return ""
	}

	value := strings.TrimSpace(res.value)
	if value == "" || hasPlaceholderResidue(value) {
		return ""
	}

	if code := normalizeLang(value); code != "" && store.Has(code) {
		return code
	}
	return ""
}

// dispatch sends a substituted query to the host interpreter, falling back to
// the direct variable store when the interpreter is missing or fails.
func (r *resolver) dispatch(ctx context.Context, query string, caller Caller) lookupResult {
	if r.interp != nil {
		value, err := r.interp.Eval(ctx, query, caller)
		switch {
		case err == nil && strings.TrimSpace(value) == "":
			return lookupResult{outcome: lookupEmpty}
		case err == nil:
			return lookupResult{outcome: lookupFound, value: value}
		default:
			r.log.WarnContext(ctx, "preference interpreter failed, using direct store",
				"query", query, "error", err)
		}
	}

	if r.vars == nil {
		return lookupResult{outcome: lookupUnavailable}
	}

	parsed := parseQuery(query)

	var value string
	var err error
	switch parsed.kind {
	case queryUserVar:
		value, err = r.vars.UserVar(ctx, parsed.name, parsed.id)
	case queryGuildVar:
		value, err = r.vars.GuildVar(ctx, parsed.name, parsed.id)
	default:
		return lookupResult{outcome: lookupUnavailable}
	}

	if err != nil {
		if !errors.Is(err, prefs.ErrNotFound) {
			r.log.WarnContext(ctx, "preference store lookup failed",
				"name", parsed.name, "error", err)
			return lookupResult{outcome: lookupUnavailable}
		}
		return lookupResult{outcome: lookupEmpty}
	}

	return lookupResult{outcome: lookupFound, value: value}
}
