package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  request_id  ", Value: "  abc  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "request_id" || fields[0].String != "abc" {
		t.Fatalf("unexpected field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, Component("session"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldComponent] != "session" {
		t.Fatalf("expected component to be session, got %q", ctx[FieldComponent])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	// Ensure logging with the fallback logger does not panic.
	enriched.Info("another log")
}

func TestJDIDField(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	id := 12
	logger.Info("with id", JDIDField(&id), CandidateIDField(3))
	logger.Info("without id", JDIDField(nil))

	entries := observed.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	withID := entries[0].ContextMap()
	if withID[FieldJDID] != int64(12) || withID[FieldCandidateID] != int64(3) {
		t.Fatalf("unexpected fields: %v", withID)
	}

	if _, ok := entries[1].ContextMap()[FieldJDID]; ok {
		t.Fatalf("expected no jd id field, got %v", entries[1].ContextMap())
	}
}

func TestRequestFields(t *testing.T) {
	fields := RequestFields("req-1", "GET", "")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldRequestID || fields[0].String != "req-1" {
		t.Fatalf("unexpected request id field: %+v", fields[0])
	}
}
