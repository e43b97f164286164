package i18n

import "strings"

// queryKind enumerates the query shapes the direct-store fallback recognizes
// when no host interpreter is available. Anything else yields no result.
type queryKind int

const (
	queryUnrecognized queryKind = iota
	queryUserVar
	queryGuildVar
)

// prefQuery is a preference query parsed once into an explicit shape, so the
// resolver dispatches per variant instead of re-scanning strings on failure
// paths.
type prefQuery struct {
	kind queryKind
	name string
	id   string
}

// substituteQuery fills caller placeholders into a query template.
func substituteQuery(tmpl string, c Caller) string {
	return strings.NewReplacer(
		"{userId}", c.UserID,
		"{guildId}", c.GuildID,
		"{channelId}", c.ChannelID,
	).Replace(tmpl)
}

// parseQuery classifies a substituted query string into one of the recognized
// shapes: getUserVar[name;id] or getServerVar[name;id].
func parseQuery(q string) prefQuery {
	q = strings.TrimSpace(q)

	var kind queryKind
	var rest string
	switch {
	case strings.HasPrefix(q, "getUserVar["):
		kind, rest = queryUserVar, strings.TrimPrefix(q, "getUserVar[")
	case strings.HasPrefix(q, "getServerVar["):
		kind, rest = queryGuildVar, strings.TrimPrefix(q, "getServerVar[")
	default:
		return prefQuery{kind: queryUnrecognized}
	}

	rest, closed := strings.CutSuffix(rest, "]")
	if !closed {
		return prefQuery{kind: queryUnrecognized}
	}

	name, id, found := strings.Cut(rest, ";")
	name = strings.TrimSpace(name)
	id = strings.TrimSpace(id)
	if !found || name == "" || id == "" || hasPlaceholderResidue(id) {
		return prefQuery{kind: queryUnrecognized}
	}

	return prefQuery{kind: kind, name: name, id: id}
}

// hasPlaceholderResidue reports whether a value still carries unfilled
// {placeholder} markers, which means a substitution input was missing or a
// collaborator echoed the raw template back.
func hasPlaceholderResidue(s string) bool {
	open := strings.IndexByte(s, '{')
	return open >= 0 && strings.IndexByte(s[open:], '}') > 0
}
