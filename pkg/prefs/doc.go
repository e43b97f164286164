// Package prefs provides access to the host's user and guild variable
// storage, the backend the localization resolver queries for language
// preferences when no interpreter is wired or the interpreter fails.
//
// The VarStore interface is intentionally tiny: two reads keyed by variable
// name plus owner id. Four implementations are included:
//
//   - Memory: in-process maps, for tests and embedded hosts;
//   - Redis: hash per owner (go-redis);
//   - Postgres: user_vars/guild_vars tables (pgx) with embedded goose
//     migrations;
//   - Mongo: user_vars/guild_vars collections (mongo-driver).
//
// All implementations return ErrNotFound for an absent variable so callers
// can distinguish "no preference" from a storage failure.
package prefs
