package logging

import (
	"net/http"
	"regexp"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// redactRegex matches field keys that must never reach the log stream.
var redactRegex = regexp.MustCompile(`(?i)(password|token|secret|key|authorization|credential|bearer|api_key|apikey|private)`)

const redactedValue = "***"

// RedactFields redacts sensitive fields based on configured patterns.
func RedactFields(fields ...zap.Field) []zap.Field {
	redacted := make([]zap.Field, len(fields))
	for i, f := range fields {
		if redactRegex.MatchString(f.Key) {
			redacted[i] = zap.String(f.Key, redactedValue)
		} else {
			redacted[i] = f
		}
	}
	return redacted
}

// Event emits one log record with every field passed through RedactFields.
// All request and event logging goes through here so a sensitive field key
// never reaches the log stream unredacted.
func Event(logger *zap.Logger, level zapcore.Level, message string, fields ...zap.Field) {
	logger.Log(level, message, RedactFields(fields...)...)
}

// EventLevelFromStatusCode maps an HTTP status to a log level: server errors
// log at error, client errors at warn, everything else at info.
func EventLevelFromStatusCode(statusCode int) zapcore.Level {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case statusCode >= http.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
