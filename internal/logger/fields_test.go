package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/cv-matcher/internal/matching"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  provider  ", Value: "  Gemini  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "provider" || fields[0].String != "Gemini" {
		t.Fatalf("unexpected provider field: %+v", fields[0])
	}

	if empty := StringFields(); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithFields(zap.New(core), zap.String("foo", "bar")).Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	if got := entries[0].ContextMap()["foo"]; got != "bar" {
		t.Fatalf("expected field to be bar, got %q", got)
	}

	fallback := WithFields(nil, zap.String("baz", "qux"))
	if fallback == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
	fallback.Info("another log")
}

func TestWithAIFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithAIFields(zap.New(core), " gemini ", "gemini-2.5-pro").Info("test log")

	ctx := observed.All()[0].ContextMap()
	if ctx[FieldProvider] != "gemini" {
		t.Fatalf("expected provider field to be gemini, got %q", ctx[FieldProvider])
	}
	if ctx[FieldModel] != "gemini-2.5-pro" {
		t.Fatalf("expected model field, got %q", ctx[FieldModel])
	}

	if fields := AIFields("", ""); len(fields) != 0 {
		t.Fatalf("expected empty fields, got %d", len(fields))
	}
}

func TestScorecardFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	card := matching.Scorecard{
		Score:     "85/100",
		Candidate: "Ada",
		Rows:      []matching.DomainRow{{Domain: "✅ Go"}},
		Summary:   matching.Summary{Tier: matching.TierStrong, TotalYears: 4, Fallback: true},
	}
	zap.New(core).Info("scorecard", ScorecardFields(card)...)

	ctx := observed.All()[0].ContextMap()
	if ctx[FieldCandidate] != "Ada" {
		t.Fatalf("unexpected candidate: %v", ctx[FieldCandidate])
	}
	if ctx["tier"] != "Strong match" {
		t.Fatalf("unexpected tier: %v", ctx["tier"])
	}
	if ctx["total_years"] != int64(4) || ctx["domains"] != int64(1) || ctx["fallback_summary"] != true {
		t.Fatalf("unexpected numeric fields: %v", ctx)
	}
}
