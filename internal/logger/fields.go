package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldComponent names the package that wrote the entry.
	FieldComponent = "component"
	// FieldJDID is the structured log field key for a job description id.
	FieldJDID = "jd_id"
	// FieldCandidateID is the structured log field key for a candidate id.
	FieldCandidateID = "candidate_id"
	// FieldRequestID is the structured log field key for an HTTP request id.
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
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

func Component(name string) zap.Field {
	return zap.String(FieldComponent, name)
}

// JDIDField logs the job description id, or nothing when it is unset.
func JDIDField(id *int) zap.Field {
	if id == nil {
		return zap.Skip()
	}
	return zap.Int(FieldJDID, *id)
}

func CandidateIDField(id int) zap.Field {
	return zap.Int(FieldCandidateID, id)
}

// RequestFields returns the fields that tie entries to one HTTP request.
// Empty values are dropped.
func RequestFields(requestID, method, path string) []zap.Field {
	return StringFields(
		StringField{Key: FieldRequestID, Value: requestID},
		StringField{Key: "method", Value: method},
		StringField{Key: "path", Value: path},
	)
}
