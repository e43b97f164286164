package i18n

import (
	"context"
	"strings"
)

// CommandName is the function name the host registers with its template
// engine.
const CommandName = "locale"

// CommandFunc is the host-facing form of the locale command: the input is a
// semicolon-delimited argument list whose first field is the translation key.
type CommandFunc func(ctx context.Context, caller Caller, input string) (string, error)

// Command exposes Localize as a template-engine function. The first
// semicolon-delimited field of the input is the key; the remaining fields are
// passed to the argument parser unchanged. An empty key is the only caller
// error; a missing key resolves to the key itself, never an error.
func (l *Localizer) Command() CommandFunc {
	return func(ctx context.Context, caller Caller, input string) (string, error) {
		fields := strings.Split(input, ";")
		key := fields[0]
		return l.Localize(ctx, key, fields[1:], caller)
	}
}
