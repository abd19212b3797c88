package api

import (
	"encoding/json"
	"testing"
)

func TestNewErrorEnvelope(t *testing.T) {
	traceID := "trace-123"
	details := []FieldIssue{{Field: "name", Issue: "required"}}
	env := NewErrorEnvelope[struct{}](&traceID, "NOT_FOUND", "resource not found", details)

	if env.Data != nil {
		t.Fatalf("expected nil data, got %+v", env.Data)
	}
	if env.Error == nil {
		t.Fatalf("expected error body to be populated")
	}
	if env.Error.Code != "NOT_FOUND" {
		t.Fatalf("expected code NOT_FOUND, got %q", env.Error.Code)
	}
	if env.Error.Message != "resource not found" {
		t.Fatalf("expected message 'resource not found', got %q", env.Error.Message)
	}
	if env.Meta.TraceID == nil || *env.Meta.TraceID != traceID {
		t.Fatalf("expected meta trace ID %q, got %v", traceID, env.Meta.TraceID)
	}
	if env.Error.TraceID == nil || *env.Error.TraceID != traceID {
		t.Fatalf("expected error trace ID %q, got %v", traceID, env.Error.TraceID)
	}
}

func TestNewErrorEnvelopeClonesDetails(t *testing.T) {
	details := []FieldIssue{{Field: "a", Issue: "first"}}
	env := NewErrorEnvelope[struct{}](nil, "BAD_REQUEST", "bad", details)

	details[0].Issue = "mutated"
	if env.Error.Details[0].Issue != "first" {
		t.Fatalf("expected details to be cloned, got %q", env.Error.Details[0].Issue)
	}
}

func TestErrorEnvelopeJSONShape(t *testing.T) {
	env := NewErrorEnvelope[struct{}](nil, "NOT_FOUND", "resource not found", nil)

	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("failed to marshal envelope: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("failed to unmarshal envelope: %v", err)
	}
	for _, key := range []string{"data", "meta", "error"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected key %q in envelope JSON", key)
		}
	}
	if string(decoded["data"]) != "null" {
		t.Fatalf("expected data to serialize as null, got %s", decoded["data"])
	}
}
