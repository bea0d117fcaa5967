package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Structured field keys shared by every component.
const (
	FieldRequestID = "request_id"
	FieldProvider  = "llm_provider"
	FieldModel     = "llm_model"
	FieldStage     = "stage"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts key/value pairs into zap fields, trimming whitespace
// and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		value := strings.TrimSpace(field.Value)
		if key == "" || value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}
	return result
}

// WithFields attaches fields to the logger, defaulting to a no-op logger when nil.
func WithFields(l *zap.Logger, fields ...zap.Field) *zap.Logger {
	l = OrNop(l)
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}

// WithModel attaches the LLM provider and model to the logger.
func WithModel(l *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(l, StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)...)
}

// WithRequest attaches a tailoring request id to the logger.
func WithRequest(l *zap.Logger, requestID string) *zap.Logger {
	return WithFields(l, StringFields(StringField{Key: FieldRequestID, Value: requestID})...)
}
