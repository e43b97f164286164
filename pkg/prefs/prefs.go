package prefs

import "context"

// VarStore reads named variables scoped to a user or a guild. Implementations
// must return ErrNotFound (possibly wrapped) when the variable does not
// exist, and honor context cancellation on every call.
type VarStore interface {
	// UserVar returns the value of a user-scoped variable.
	UserVar(ctx context.Context, name, userID string) (string, error)

	// GuildVar returns the value of a guild-scoped variable.
	GuildVar(ctx context.Context, name, guildID string) (string, error)
}
