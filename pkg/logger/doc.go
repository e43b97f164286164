// Package logger builds configured slog.Logger instances: JSON or text
// format, level, output destination and static attributes are set through
// functional options. Defaults are production-safe (JSON, info, stdout).
package logger
