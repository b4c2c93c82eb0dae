// Package logger builds the process slog.Logger from configuration.
package logger
