package prefs

import (
	"context"
	"sync"
)

// Memory is an in-process VarStore, used in tests and by hosts that keep
// their variable tables in memory. It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	users  map[string]map[string]string
	guilds map[string]map[string]string
}

// NewMemory creates an empty in-memory variable store.
func NewMemory() *Memory {
	return &Memory{
		users:  make(map[string]map[string]string),
		guilds: make(map[string]map[string]string),
	}
}

// SetUserVar stores a user-scoped variable.
func (m *Memory) SetUserVar(userID, name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.users[userID] == nil {
		m.users[userID] = make(map[string]string)
	}
	m.users[userID][name] = value
}

// SetGuildVar stores a guild-scoped variable.
func (m *Memory) SetGuildVar(guildID, name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.guilds[guildID] == nil {
		m.guilds[guildID] = make(map[string]string)
	}
	m.guilds[guildID][name] = value
}

// UserVar implements the VarStore interface.
func (m *Memory) UserVar(ctx context.Context, name, userID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.users[userID][name]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// GuildVar implements the VarStore interface.
func (m *Memory) GuildVar(ctx context.Context, name, guildID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.guilds[guildID][name]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}
