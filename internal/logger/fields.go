package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldChannel is the structured log field key for the boundary that requested a screening (cli, http, interactive).
	FieldChannel = "channel"
	// FieldResume is the structured log field key for the resume file name.
	FieldResume = "resume"
	// FieldRequestID is the structured log field key for the HTTP request id.
	FieldRequestID = "request_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// ScreeningFields returns the fields describing where a screening request came from.
func ScreeningFields(channel, resume string) []zap.Field {
	return StringFields(
		StringField{Key: FieldChannel, Value: channel},
		StringField{Key: FieldResume, Value: resume},
	)
}

// WithScreening attaches the screening fields to the provided logger.
func WithScreening(logger *zap.Logger, channel, resume string) *zap.Logger {
	return WithFields(logger, ScreeningFields(channel, resume)...)
}
