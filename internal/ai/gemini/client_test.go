package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

type fakeModels struct {
	queue   []fakeResponse
	calls   int
	models  []string
	configs []*genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, _ []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.models = append(f.models, model)
	f.configs = append(f.configs, config)
	if len(f.queue) == 0 {
		return nil, errors.New("unexpected call")
	}
	next := f.queue[0]
	f.queue = f.queue[1:]
	return next.resp, next.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func noWait(context.Context, time.Duration) error { return nil }

func TestGeneratorRetriesOnTemporaryError(t *testing.T) {
	models := &fakeModels{queue: []fakeResponse{
		{err: genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}},
		{err: genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"}},
		{resp: textResponse(` {"ok": true} `)},
	}}
	gen := newGenerator(models, "gemini-pro", 2, zap.NewNop())
	gen.wait = noWait

	out, err := gen.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"ok": true}` {
		t.Fatalf("unexpected output: %q", out)
	}
	if models.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", models.calls)
	}
	if models.models[0] != "gemini-pro" {
		t.Fatalf("unexpected model: %s", models.models[0])
	}
	if models.configs[0].ResponseMIMEType != "application/json" {
		t.Fatalf("expected json response mime type")
	}
}

func TestGeneratorGivesUpAfterMaxRetries(t *testing.T) {
	tempErr := genai.APIError{Code: http.StatusServiceUnavailable}
	models := &fakeModels{queue: []fakeResponse{{err: tempErr}, {err: tempErr}}}
	gen := newGenerator(models, "", 1, nil)
	gen.wait = noWait

	_, err := gen.GenerateContent(context.Background(), "prompt")
	if err == nil {
		t.Fatalf("expected error")
	}
	if models.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", models.calls)
	}
	if gen.Model() != defaultModel {
		t.Fatalf("expected default model, got %s", gen.Model())
	}
}

func TestGeneratorDoesNotRetryPermanentError(t *testing.T) {
	models := &fakeModels{queue: []fakeResponse{{err: genai.APIError{Code: http.StatusBadRequest}}}}
	gen := newGenerator(models, "m", 3, nil)
	gen.wait = noWait

	if _, err := gen.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error")
	}
	if models.calls != 1 {
		t.Fatalf("expected a single call, got %d", models.calls)
	}
}

func TestGeneratorStopsWhenContextDone(t *testing.T) {
	models := &fakeModels{queue: []fakeResponse{{err: genai.APIError{Code: http.StatusInternalServerError}}}}
	gen := newGenerator(models, "m", 3, nil)
	gen.wait = func(ctx context.Context, _ time.Duration) error { return context.Canceled }

	if _, err := gen.GenerateContent(context.Background(), "prompt"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGeneratorJoinsParts(t *testing.T) {
	models := &fakeModels{queue: []fakeResponse{{resp: textResponse("first", "  ", "second")}}}
	gen := newGenerator(models, "m", 0, nil)

	out, err := gen.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "first\nsecond" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGeneratorRejectsEmptyInputAndOutput(t *testing.T) {
	gen := newGenerator(&fakeModels{queue: []fakeResponse{{resp: textResponse(" ")}}}, "m", 0, nil)

	if _, err := gen.GenerateContent(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty prompt")
	}
	if _, err := gen.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error for empty response")
	}

	var nilGen *Generator
	if _, err := nilGen.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error for nil generator")
	}
}

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	if _, err := NewGenerator(context.Background(), " ", "", 0, nil); err == nil {
		t.Fatalf("expected error for missing api key")
	}
}
