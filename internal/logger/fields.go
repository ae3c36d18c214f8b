package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/cv-matcher/internal/matching"
)

const (
	// FieldProvider is the structured log field key for the AI provider name.
	FieldProvider = "ai_provider"
	// FieldModel is the structured log field key for the AI model identifier.
	FieldModel = "ai_model"
	// FieldCandidate is the structured log field key for the candidate display name.
	FieldCandidate = "candidate"
	// FieldSource is the structured log field key for the payload origin.
	FieldSource = "source"
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

// WithFields attaches the fields to the logger, defaulting to a no-op logger
// when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// AIFields describes the AI provider and model. Empty values are skipped.
func AIFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

func WithAIFields(logger *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(logger, AIFields(provider, model)...)
}

// ScorecardFields summarizes a scorecard in a single log line.
func ScorecardFields(card matching.Scorecard) []zap.Field {
	fields := StringFields(StringField{Key: FieldCandidate, Value: card.Candidate})
	return append(fields,
		zap.String("score", card.Score),
		zap.Stringer("tier", card.Summary.Tier),
		zap.Int("total_years", card.Summary.TotalYears),
		zap.Int("domains", len(card.Rows)),
		zap.Bool("fallback_summary", card.Summary.Fallback),
	)
}
